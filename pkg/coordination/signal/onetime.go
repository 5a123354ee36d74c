package signal

import "time"

// OneTime synchronizes two goroutines exactly once:
//
//  1. one side creates the OneTime
//  2. the other side calls WaitFor on it
//  3. the first side calls Notify
//  4. the waiter drops out of WaitFor and continues
//
// Notify is idempotent; only the first call has an effect.
type OneTime struct {
	state *FutureValue[struct{}]
}

// NewOneTime creates an unnotified OneTime signal.
func NewOneTime() OneTime {
	return OneTime{state: NewFutureValue[struct{}]()}
}

// Notify releases all current and future waiters. Calls after the first are
// no-ops.
func (s OneTime) Notify() {
	s.state.Set(struct{}{})
}

// WaitFor sleeps for at least the given duration unless the signal is
// notified first. It returns true on timeout, false when notified.
func (s OneTime) WaitFor(d time.Duration) bool {
	return s.state.WaitFor(d)
}

// Wait blocks until the signal is notified.
func (s OneTime) Wait() {
	<-s.state.Ready()
}

// Notified returns a channel closed once the signal has been notified.
func (s OneTime) Notified() <-chan struct{} {
	return s.state.Ready()
}
