package waiter

import "cmp"

// HasChanged is an edge-triggered predicate: Setup snapshots the current
// value, and the wait completes when the value differs from that snapshot.
// Each wait entry re-arms the trigger.
type HasChanged[T comparable] struct {
	prev T
}

// NewHasChanged creates a HasChanged predicate armed against initial.
func NewHasChanged[T comparable](initial T) *HasChanged[T] {
	return &HasChanged[T]{prev: initial}
}

func (p *HasChanged[T]) Test(v T) bool {
	return v != p.prev
}

func (p *HasChanged[T]) Setup(v *T) bool {
	p.prev = *v
	return false
}

// EqualTo is a level-triggered predicate that holds while the value equals
// Target.
type EqualTo[T comparable] struct {
	Target T
}

func (p EqualTo[T]) Test(v T) bool {
	return v == p.Target
}

func (p EqualTo[T]) Setup(v *T) bool {
	return p.Test(*v)
}

// GreaterThan is a level-triggered predicate that holds while the value is
// strictly greater than Bound.
type GreaterThan[T cmp.Ordered] struct {
	Bound T
}

func (p GreaterThan[T]) Test(v T) bool {
	return p.Bound < v
}

func (p GreaterThan[T]) Setup(v *T) bool {
	return p.Test(*v)
}

// ForChange creates a waiter that completes when the value moves away from
// whatever it was when the wait began.
func ForChange[T comparable](initial T) *Waiter[T] {
	return New[T](initial, NewHasChanged(initial))
}

// ForEqual creates a waiter that completes while the value equals target.
func ForEqual[T comparable](initial, target T) *Waiter[T] {
	return New[T](initial, EqualTo[T]{Target: target})
}

// ForGreater creates a waiter that completes while the value exceeds bound.
func ForGreater[T cmp.Ordered](initial, bound T) *Waiter[T] {
	return New[T](initial, GreaterThan[T]{Bound: bound})
}

// Add adjusts an ordered waiter's value by delta, notifying waiters if the
// predicate becomes true.
func Add[T cmp.Ordered](w *Waiter[T], delta T) {
	w.Modify(func(v *T) { *v += delta })
}
