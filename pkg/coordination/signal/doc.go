/*
Package signal provides single-shot completion primitives.

OneTime lets one goroutine release another exactly once, with a timed wait
whose boolean result reports "timed out without notification":

	stop := signal.NewOneTime()

	go func() {
		for stop.WaitFor(100 * time.Millisecond) {
			poll()
		}
	}()

	stop.Notify()

FutureValue carries a value or an error from a producing goroutine to any
number of consumers; the first fulfillment wins and later ones are discarded:

	fv := signal.NewFutureValue[int]()
	go func() { fv.Set(compute()) }()
	v, err := fv.Get()
*/
package signal
