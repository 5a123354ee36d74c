/*
Package waiter provides a predicate-driven condition value and the latch and
barrier coordination points built on it.

A Waiter pairs a guarded value with a predicate over it. Goroutines block in
Wait until a mutation (Set, Modify, or an Updater release) makes the
predicate true:

	w := waiter.ForGreater(0, 42)

	go func() {
		for i := 0; i < 50; i++ {
			waiter.Add(w, 1)
		}
	}()

	w.Wait() // returns once the value exceeds 42

Predicates split into two methods: Test evaluates the stored value, and
Setup runs once per wait entry and may update predicate state. The split is
what makes edge triggers possible: HasChanged re-arms its snapshot in Setup,
while the level triggers (EqualTo, GreaterThan) just delegate to Test.

Each predicate-true transition advances a generation counter and wakes all
waiters by closing a broadcast channel. A waiter resumes only when the
generation it entered with has changed, so stale wake-ups never re-run the
predicate.

Latch is a single-use count-down built on the zero-equality predicate;
Barrier extends it with a reset function that reseeds the counter each time
it reaches zero:

	b := waiter.NewBarrier(3, func(n uint64) uint64 { return n + 1 })

	// three goroutines rendezvous, then the barrier re-arms at 4
	b.CountDownAndWait()
*/
package waiter
