/*
Package goasync provides a library of concurrency primitives for thread
coordination, producer/consumer pipelines, time-based dispatch, and bounded
parallel execution.

Coordination (pkg/coordination):
  - flags: one-shot and two-state atomic flags
  - signal: single-shot completion signals and future values
  - syncval: mutex-guarded values with scoped accessors
  - waiter: predicate-driven condition waits, latches, and barriers

Queues (pkg/queue):
  - bounded: capped FIFO with timed pops and shared reader/writer lifetime

Scheduling (pkg/scheduling):
  - timerqueue: single-worker deadline dispatch with cron support
  - lazypool: on-demand worker pool that retires idle workers
  - repeat: guarded periodic invocation with cooperative cancellation

Bulk execution (pkg/invoke):
  - fan-out helpers distributing work across a fixed number of goroutines

Example usage:

	import (
		"github.com/vnykmshr/goasync/pkg/queue/bounded"
		"github.com/vnykmshr/goasync/pkg/scheduling/lazypool"
	)

	q := bounded.New[string](64)
	pool := lazypool.New(4)

	q.Push("job")
	pool.AddJob(func() {
		if r := q.Pop(); r.Valid() {
			process(r.Value)
		}
	})
	pool.Close()
*/
package goasync
