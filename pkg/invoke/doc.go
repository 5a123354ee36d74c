/*
Package invoke provides helpers that distribute work across a fixed number
of goroutines.

Async and Threads return futures; RunThreads and ForEach use the calling
goroutine as one of the workers and return when everything is done; OnEach
captures per-element results and failures in futures; RunTasks drains an
indexed task list with a fixed worker count.

	// sum a slice on four goroutines
	var total atomic.Int64
	invoke.ForEach(4, values, func(v *int) { total.Add(int64(*v)) })

	// per-element results, panics contained per element
	results := invoke.OnEach(4, rows, func(r *Row) (int, error) {
		return transform(r)
	})
	for _, fv := range results.Futures() {
		n, err := fv.Get()
		...
	}

RunThreads and ForEach give failures nowhere to go, so their functions must
not panic. OnEach is the safe choice when user code may fail.
*/
package invoke
