package signal

import (
	"sync"
	"time"

	"github.com/vnykmshr/goasync/pkg/coordination/flags"
)

// FutureValue is a single-shot container for a value or an error. The first
// Set or SetError fulfills it and wakes all waiters; later calls are silently
// discarded. It combines the producing and consuming side in one object so
// their lifetimes cannot diverge.
type FutureValue[T any] struct {
	once  flags.Done
	ready chan struct{}

	mu    sync.Mutex
	value T
	err   error
}

// NewFutureValue creates an unfulfilled FutureValue.
func NewFutureValue[T any]() *FutureValue[T] {
	return &FutureValue[T]{
		once:  flags.NewDone(),
		ready: make(chan struct{}),
	}
}

// Set fulfills the future with value. Only the first Set or SetError takes
// effect.
func (f *FutureValue[T]) Set(value T) {
	if f.once.Set() {
		return
	}
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
	close(f.ready)
}

// SetError fulfills the future with an error. Only the first Set or SetError
// takes effect.
func (f *FutureValue[T]) SetError(err error) {
	if f.once.Set() {
		return
	}
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
	close(f.ready)
}

// Get blocks until the future is fulfilled and returns the stored value or
// error. Get may be called any number of times and from any goroutine.
func (f *FutureValue[T]) Get() (T, error) {
	<-f.ready
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// WaitFor blocks until the future is fulfilled or the duration elapses.
// It returns true on timeout, false when the future was fulfilled.
func (f *FutureValue[T]) WaitFor(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-f.ready:
		return false
	case <-timer.C:
		return true
	}
}

// Ready returns a channel closed when the future is fulfilled, for use in
// select statements.
func (f *FutureValue[T]) Ready() <-chan struct{} {
	return f.ready
}
