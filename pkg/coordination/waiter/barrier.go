package waiter

import "time"

// ResetFunc produces the next cycle's counter value from the current reset
// count when a barrier's counter reaches zero. It may keep, increase, or
// decrease the count; returning zero would make the next cycle trip
// immediately and is a caller bug.
type ResetFunc func(current uint64) uint64

// Barrier is a reusable coordination point: goroutines count down and block
// until the counter reaches zero, at which point all of them are released
// and the counter is reseeded from the reset function. Goroutines that
// entered a cycle are released in that cycle; the generation mechanism keeps
// late arrivals from consuming an earlier release.
type Barrier struct {
	w          *Waiter[uint64]
	resetCount uint64
	resetFn    ResetFunc
}

// NewBarrier creates a barrier seeded with count. Panics if count is zero.
// A nil reset function keeps the count unchanged between cycles.
func NewBarrier(count uint64, reset ResetFunc) *Barrier {
	if count == 0 {
		panic("waiter: barrier created with a count of 0")
	}
	if reset == nil {
		reset = func(current uint64) uint64 { return current }
	}
	return &Barrier{
		w:          ForEqual[uint64](count, 0),
		resetCount: count,
		resetFn:    reset,
	}
}

// countDownLocked decrements and, when this caller trips the barrier,
// reseeds the counter from the reset function. Reports whether this caller
// tripped it.
func (b *Barrier) countDownLocked() bool {
	b.w.value--
	if !b.w.checkAndNotifyLocked() {
		return false
	}
	b.resetCount = b.resetFn(b.resetCount)
	b.w.value = b.resetCount
	b.w.checkAndNotifyLocked()
	return true
}

// CountDownAndWait decrements the counter; if it did not reach zero, blocks
// until another goroutine trips the barrier. The tripping goroutine returns
// immediately after reseeding.
func (b *Barrier) CountDownAndWait() {
	b.w.mu.Lock()
	defer b.w.mu.Unlock()
	if b.countDownLocked() {
		return
	}
	b.w.waitLocked(nil)
}

// CountDownAndWaitUntil is CountDownAndWait with a deadline. Returns false
// if the deadline passed before the barrier tripped.
func (b *Barrier) CountDownAndWaitUntil(tp time.Time) bool {
	timer, stop := deadlineTimer(tp)
	defer stop()
	b.w.mu.Lock()
	defer b.w.mu.Unlock()
	if b.countDownLocked() {
		return true
	}
	return b.w.waitLocked(timer)
}

// CountDownAndWaitFor is CountDownAndWait with a timeout.
func (b *Barrier) CountDownAndWaitFor(d time.Duration) bool {
	return b.CountDownAndWaitUntil(time.Now().Add(d))
}

// ResetCount returns the counter value most recently produced by the reset
// function (the seed value before the first cycle completes).
func (b *Barrier) ResetCount() uint64 {
	b.w.mu.Lock()
	defer b.w.mu.Unlock()
	return b.resetCount
}
