package invoke

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/vnykmshr/goasync/pkg/coordination/signal"
)

// Results holds one future per element processed by OnEach, in element
// order. Futures fulfill as their elements complete; Wait blocks for the
// whole batch.
type Results[R any] struct {
	futures []*signal.FutureValue[R]
	workers int
	wg      sync.WaitGroup
}

// Len returns the number of element futures.
func (r *Results[R]) Len() int {
	return len(r.futures)
}

// Empty reports whether no elements were processed.
func (r *Results[R]) Empty() bool {
	return len(r.futures) == 0
}

// Futures returns the per-element futures, indexed like the input slice.
func (r *Results[R]) Futures() []*signal.FutureValue[R] {
	return r.futures
}

// Workers returns the number of goroutines launched for the batch.
func (r *Results[R]) Workers() int {
	return r.workers
}

// Wait blocks until every element has been processed.
func (r *Results[R]) Wait() {
	r.wg.Wait()
}

// OnEach calls fn once per element of items on at most n goroutines — never
// more goroutines than elements — and captures each call's result or
// failure in a per-element future. Unlike ForEach, a panicking fn is safe:
// the panic lands in that element's future as an error.
//
// With n == 0 or an empty slice, no goroutines start and the result is
// empty.
func OnEach[S ~[]E, E, R any](n int, items S, fn func(*E) (R, error)) *Results[R] {
	count := len(items)
	if n <= 0 || count == 0 {
		return &Results[R]{}
	}
	if n > count {
		n = count
	}

	futures := make([]*signal.FutureValue[R], count)
	for i := range futures {
		futures[i] = signal.NewFutureValue[R]()
	}

	r := &Results[R]{futures: futures, workers: n}
	w := walker[E]{items: items}
	for i := 0; i < n; i++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for {
				idx, e := w.take()
				if e == nil {
					return
				}
				runOne(e, fn, futures[idx])
			}
		}()
	}
	return r
}

// runOne executes fn for one element, converting a panic into that
// element's error.
func runOne[E, R any](e *E, fn func(*E) (R, error), fv *signal.FutureValue[R]) {
	defer func() {
		if p := recover(); p != nil {
			fv.SetError(fmt.Errorf("invoke: panic: %v\n%s", p, debug.Stack()))
		}
	}()
	v, err := fn(e)
	if err != nil {
		fv.SetError(err)
		return
	}
	fv.Set(v)
}
