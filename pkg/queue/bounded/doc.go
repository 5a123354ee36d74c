/*
Package bounded provides a capped FIFO queue with blocking, timed, and
non-blocking pops, and a shared reader/writer lifetime model.

Producers never block: a push into a full or finished queue is dropped and
counted. Consumers choose their blocking behavior:

	q := bounded.New[string](64)

	q.Push("a")

	r := q.PopWaitFor(100 * time.Millisecond)
	switch r.State {
	case bounded.Valid:
		use(r.Value)
	case bounded.Timeout:
		// deadline elapsed
	case bounded.Empty:
		// queue finished and drained
	}

The shared form ties the queue's lifetime to its writers. When the last
writer handle is closed, the queue finishes and blocked readers drain to
Empty:

	w := bounded.NewShared[int](16)
	r := w.AsReader()

	go func() {
		defer w.Close()
		for _, v := range produce() {
			w.Push(v)
		}
	}()

	for res := r.Pop(); res.Valid(); res = r.Pop() {
		consume(res.Value)
	}
*/
package bounded
