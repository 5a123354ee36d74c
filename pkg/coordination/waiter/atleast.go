package waiter

import (
	"cmp"
	"time"
)

// atLeast holds while the value has reached the bound supplied at wait time.
type atLeast[T cmp.Ordered] struct {
	bound T
}

func (p *atLeast[T]) Test(v T) bool {
	return p.bound <= v
}

func (p *atLeast[T]) Setup(v *T) bool {
	return p.Test(*v)
}

// ForAtLeast is a waiter whose threshold is supplied per wait call: each
// Wait variant takes the minimum value to wait for. Concurrent waits share
// the latest bound, matching the single-predicate design of Waiter.
type ForAtLeast[T cmp.Ordered] struct {
	w *Waiter[T]
	p *atLeast[T]
}

// NewForAtLeast creates a ForAtLeast waiter with the given initial value.
func NewForAtLeast[T cmp.Ordered](initial T) *ForAtLeast[T] {
	p := &atLeast[T]{}
	return &ForAtLeast[T]{w: New[T](initial, p), p: p}
}

// TryWait reports whether the value has already reached min.
func (a *ForAtLeast[T]) TryWait(min T) bool {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()
	a.p.bound = min
	return a.w.setupLocked()
}

// Wait blocks until the value reaches min.
func (a *ForAtLeast[T]) Wait(min T) {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()
	a.p.bound = min
	a.w.enterWaitLocked(nil)
}

// WaitUntil is Wait with a deadline. Returns false on timeout.
func (a *ForAtLeast[T]) WaitUntil(min T, tp time.Time) bool {
	timer, stop := deadlineTimer(tp)
	defer stop()
	a.w.mu.Lock()
	defer a.w.mu.Unlock()
	a.p.bound = min
	return a.w.enterWaitLocked(timer)
}

// WaitFor is Wait with a timeout. Returns false on timeout.
func (a *ForAtLeast[T]) WaitFor(min T, d time.Duration) bool {
	return a.WaitUntil(min, time.Now().Add(d))
}

// Set assigns the value, waking waiters whose bound is now reached.
func (a *ForAtLeast[T]) Set(v T) {
	a.w.Set(v)
}

// Get returns a copy of the current value.
func (a *ForAtLeast[T]) Get() T {
	return a.w.Get()
}

// Add adjusts the value by delta.
func (a *ForAtLeast[T]) Add(delta T) {
	Add(a.w, delta)
}
