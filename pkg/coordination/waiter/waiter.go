package waiter

import (
	"sync"
	"time"
)

// Predicate decides when a Waiter's value is ready. Test evaluates the stored
// value. Setup runs once per wait entry, may update predicate state from the
// stored value (edge-triggered predicates record a snapshot here), and
// reports whether the wait can return immediately.
//
// Both methods are only ever invoked with the Waiter's lock held.
type Predicate[T any] interface {
	Test(v T) bool
	Setup(v *T) bool
}

// Waiter holds a value and a predicate over it, and lets goroutines block
// until a mutation makes the predicate true.
//
// Every transition that makes the predicate true increments an internal
// generation counter and wakes all waiters. A waiter resumes only when the
// generation it entered with has changed, so stale wake-ups never re-run a
// possibly stateful predicate.
type Waiter[T any] struct {
	mu    sync.Mutex
	value T
	pred  Predicate[T]
	gen   uint64
	wake  chan struct{}
}

// New creates a Waiter with the given initial value and predicate.
func New[T any](value T, pred Predicate[T]) *Waiter[T] {
	if pred == nil {
		panic("waiter: predicate must not be nil")
	}
	return &Waiter[T]{
		value: value,
		pred:  pred,
		wake:  make(chan struct{}),
	}
}

// testLocked evaluates the predicate against the current value.
func (w *Waiter[T]) testLocked() bool {
	return w.pred.Test(w.value)
}

// setupLocked runs the predicate's per-wait initialization.
func (w *Waiter[T]) setupLocked() bool {
	return w.pred.Setup(&w.value)
}

// checkAndNotifyLocked bumps the generation and wakes all waiters if the
// predicate holds. Reports the predicate result.
func (w *Waiter[T]) checkAndNotifyLocked() bool {
	if !w.testLocked() {
		return false
	}
	w.gen++
	close(w.wake)
	w.wake = make(chan struct{})
	return true
}

// waitLocked blocks until the generation changes or the timer fires. A nil
// timer channel means wait without timeout. It does not run Setup; callers
// decide whether the wait is already satisfied. Returns false on timeout.
//
// The lock is released while blocked and held again on return.
func (w *Waiter[T]) waitLocked(timer <-chan time.Time) bool {
	start := w.gen
	for w.gen == start {
		ch := w.wake
		w.mu.Unlock()
		select {
		case <-ch:
			w.mu.Lock()
		case <-timer:
			w.mu.Lock()
			return w.gen != start
		}
	}
	return true
}

// enterWaitLocked is the common body of all wait variants: run Setup, and if
// it does not satisfy the wait, block until notified or timed out.
func (w *Waiter[T]) enterWaitLocked(timer <-chan time.Time) bool {
	if w.setupLocked() {
		return true
	}
	return w.waitLocked(timer)
}

// deadlineTimer returns a timer channel firing at tp and a stop function.
func deadlineTimer(tp time.Time) (<-chan time.Time, func()) {
	t := time.NewTimer(time.Until(tp))
	return t.C, func() { t.Stop() }
}

// TryWait evaluates the predicate's Setup step and reports its result. It
// never blocks.
func (w *Waiter[T]) TryWait() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.setupLocked()
}

// Wait blocks until the predicate becomes true. If it is already true on
// entry, Wait returns immediately.
func (w *Waiter[T]) Wait() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enterWaitLocked(nil)
}

// WaitUntil is Wait with a deadline. It returns false if the deadline passed
// before the predicate became true.
func (w *Waiter[T]) WaitUntil(tp time.Time) bool {
	timer, stop := deadlineTimer(tp)
	defer stop()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enterWaitLocked(timer)
}

// WaitFor is Wait with a timeout. It returns false if the duration elapsed
// before the predicate became true.
func (w *Waiter[T]) WaitFor(d time.Duration) bool {
	return w.WaitUntil(time.Now().Add(d))
}

// Modify runs fn on the value under lock, then checks the predicate; if it
// now holds, the generation advances and all waiters wake. Reports the
// predicate result. fn must not call back into this Waiter.
func (w *Waiter[T]) Modify(fn func(*T)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.value)
	return w.checkAndNotifyLocked()
}

// ModifyAndWait runs fn like Modify and then waits for the predicate under
// the same lock acquisition.
func (w *Waiter[T]) ModifyAndWait(fn func(*T)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.value)
	w.checkAndNotifyLocked()
	w.enterWaitLocked(nil)
}

// ModifyAndWaitUntil is ModifyAndWait with a deadline. Returns false on
// timeout.
func (w *Waiter[T]) ModifyAndWaitUntil(tp time.Time, fn func(*T)) bool {
	timer, stop := deadlineTimer(tp)
	defer stop()
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.value)
	w.checkAndNotifyLocked()
	return w.enterWaitLocked(timer)
}

// ModifyAndWaitFor is ModifyAndWait with a timeout. Returns false on timeout.
func (w *Waiter[T]) ModifyAndWaitFor(d time.Duration, fn func(*T)) bool {
	return w.ModifyAndWaitUntil(time.Now().Add(d), fn)
}

// Set assigns the value and notifies waiters if the predicate now holds.
func (w *Waiter[T]) Set(v T) {
	w.Modify(func(p *T) { *p = v })
}

// Get returns a copy of the current value.
func (w *Waiter[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Updater returns a scoped accessor holding the Waiter's lock. Release runs
// the predicate check, so mutations through the updater notify waiters the
// same way Modify does.
func (w *Waiter[T]) Updater() *Updater[T] {
	w.mu.Lock()
	return &Updater[T]{owner: w}
}

// Updater grants locked access to a Waiter's value. Unlike a plain guarded
// value, releasing it triggers the owner's predicate check.
type Updater[T any] struct {
	owner *Waiter[T]
}

// Ptr returns a pointer to the guarded value, valid until Release.
func (u *Updater[T]) Ptr() *T {
	return &u.owner.value
}

// Get returns a copy of the guarded value.
func (u *Updater[T]) Get() T {
	return u.owner.value
}

// Set assigns the guarded value.
func (u *Updater[T]) Set(v T) {
	u.owner.value = v
}

// Release checks the predicate, notifies waiters if it holds, and unlocks.
func (u *Updater[T]) Release() {
	owner := u.owner
	u.owner = nil
	owner.checkAndNotifyLocked()
	owner.mu.Unlock()
}
