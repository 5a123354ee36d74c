package invoke

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/vnykmshr/goasync/pkg/coordination/signal"
)

// Async runs fn in a new goroutine and returns a future for its result. A
// panic in fn is captured as an error on the future.
func Async[R any](fn func() (R, error)) *signal.FutureValue[R] {
	fv := signal.NewFutureValue[R]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				fv.SetError(fmt.Errorf("invoke: panic: %v\n%s", r, debug.Stack()))
			}
		}()
		v, err := fn()
		if err != nil {
			fv.SetError(err)
			return
		}
		fv.Set(v)
	}()
	return fv
}

// Threads launches fn on n goroutines and returns one future per launch.
func Threads[R any](n int, fn func() (R, error)) []*signal.FutureValue[R] {
	futures := make([]*signal.FutureValue[R], 0, n)
	for i := 0; i < n; i++ {
		futures = append(futures, Async(fn))
	}
	return futures
}

// RunThreads invokes fn on n goroutines, one of them the calling goroutine,
// and returns when all have finished. With n == 0 it returns immediately.
//
// fn must not panic: the parallel invocations have nowhere to deliver a
// failure, so a panic tears down the process.
func RunThreads(n int, fn func()) {
	if n == 0 {
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < n-1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	fn()
	wg.Wait()
}

// ForEach calls fn once per element of items, distributing elements across
// n goroutines (one of them the caller) that contend on a shared cursor.
// Visit order is unspecified. fn must not panic, as with RunThreads.
func ForEach[S ~[]E, E any](n int, items S, fn func(*E)) {
	w := walker[E]{items: items}
	RunThreads(n, func() {
		for {
			_, e := w.take()
			if e == nil {
				return
			}
			fn(e)
		}
	})
}
