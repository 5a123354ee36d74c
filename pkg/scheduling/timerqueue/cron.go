package timerqueue

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/goasync/pkg/coordination/flags"
)

// ScheduleCron repeatedly runs fn at the times described by a standard
// five-field cron expression, riding on the scheduler's deadline dispatch.
// It returns a cancel function that stops future occurrences; an occurrence
// already running is not interrupted. Stopping the scheduler also ends the
// series.
func (s *Scheduler) ScheduleCron(expr string, fn func()) (cancel func(), err error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("timerqueue: parse cron %q: %w", expr, err)
	}

	canceled := flags.NewFlag(false)

	var arm func()
	arm = func() {
		s.DelayUntil(schedule.Next(time.Now()), func() {
			if canceled.Bool() {
				return
			}
			fn()
			if !canceled.Bool() {
				arm()
			}
		})
	}
	arm()

	return func() { canceled.Set(true) }, nil
}
