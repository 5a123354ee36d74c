package repeat

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vnykmshr/goasync/pkg/coordination/signal"
)

// Action is one iteration of a repeated task. Returning stop == true or a
// non-nil error ends the repetition; the error is surfaced by Stop or Wait.
//
// Note the sense of the two booleans in this package: an Action returning
// true means "stop repeating", while the underlying signal wait returning
// true means "interval elapsed without a stop request".
type Action func() (stop bool, err error)

// Run adapts a plain function into an Action that never stops on its own.
func Run(fn func()) Action {
	return func() (bool, error) {
		fn()
		return false, nil
	}
}

// RunUntil adapts a boolean function into an Action: returning true stops
// the repetition.
func RunUntil(fn func() bool) Action {
	return func() (bool, error) {
		return fn(), nil
	}
}

// Guard owns a goroutine that invokes an action at a fixed interval. The
// goroutine sleeps the interval first, then acts; it ends when the action
// stops or fails, or when the guard is stopped or closed.
type Guard struct {
	stop signal.OneTime
	done chan struct{}
	err  error
}

// Every starts invoking action at the given interval and returns the guard
// bound to the loop's lifetime. A panic in the action ends the loop and is
// reported as an error.
func Every(interval time.Duration, action Action) *Guard {
	g := &Guard{
		stop: signal.NewOneTime(),
		done: make(chan struct{}),
	}
	go g.run(interval, action)
	return g
}

func (g *Guard) run(interval time.Duration, action Action) {
	defer close(g.done)
	for g.stop.WaitFor(interval) {
		stop, err := g.invoke(action)
		if err != nil {
			g.err = err
			return
		}
		if stop {
			return
		}
	}
}

func (g *Guard) invoke(action Action) (stop bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("repeat: action panicked: %v\n%s", r, debug.Stack())
		}
	}()
	return action()
}

// Stop requests the loop to end, waits for it, and returns the error the
// action ended with, if any. Safe to call more than once.
func (g *Guard) Stop() error {
	g.stop.Notify()
	return g.Wait()
}

// Wait blocks until the loop ends on its own (action stopped or failed)
// and returns its error, if any.
func (g *Guard) Wait() error {
	<-g.done
	return g.err
}

// Close stops the loop and discards any error. It exists for defer.
func (g *Guard) Close() {
	g.stop.Notify()
	<-g.done
}
