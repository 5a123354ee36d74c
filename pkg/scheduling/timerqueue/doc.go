// Package timerqueue provides a single-worker scheduler that dispatches
// callbacks at deadlines.
//
// Actions are kept in a min-heap ordered by deadline; one background worker
// sleeps until the earliest deadline and runs due callbacks in order. A
// callback is never invoked before its deadline, and two callbacks never run
// concurrently. Throughput beyond one worker is composed, not built in: have
// the callback submit to a worker pool instead of doing the work inline.
//
//	s := timerqueue.New()
//	defer s.Stop()
//
//	s.DelayFor(50*time.Millisecond, func() { flush() })
//	s.DelayUntil(deadline, func() { expire(key) })
//
//	// recurring dispatch from a cron expression
//	cancel, err := s.ScheduleCron("*/5 * * * *", rotate)
package timerqueue
