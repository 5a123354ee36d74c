package timerqueue

import (
	"cmp"
	"sync"
	"time"

	"github.com/addrummond/heap"
)

// idleWait bounds how long the worker sleeps when no actions are queued.
const idleWait = 24 * time.Hour

// action pairs a deadline with a callback. Equal deadlines tie-break on
// insertion order to keep the heap deterministic.
type action struct {
	at  time.Time
	fn  func()
	seq uint64
}

func (a *action) Cmp(b *action) int {
	if c := a.at.Compare(b.at); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// Scheduler dispatches callbacks at deadlines from a single worker
// goroutine. A callback is never invoked before its deadline; callbacks run
// in ascending deadline order and never overlap, so a long-running one
// defers those behind it. Callback panics are swallowed to protect the
// worker.
type Scheduler struct {
	mu      sync.Mutex
	done    bool
	started bool
	actions heap.Heap[action, heap.Min]
	pending int
	seq     uint64

	wake    chan struct{}
	stopped chan struct{}

	inst *instrumentation
}

// New creates a scheduler. The worker goroutine starts lazily on the first
// scheduled action.
func New() *Scheduler {
	return &Scheduler{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// notify nudges the worker without blocking; a pending nudge is enough.
func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// DelayUntil schedules fn to run at tp. If the scheduler is stopped, the
// action is dropped silently.
func (s *Scheduler) DelayUntil(tp time.Time, fn func()) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	if !s.started {
		s.started = true
		go s.worker()
	}
	s.seq++
	heap.PushOrderable(&s.actions, action{at: tp, fn: fn, seq: s.seq})
	s.pending++
	if s.inst != nil {
		s.inst.scheduled.Inc()
		s.inst.pending.Set(float64(s.pending))
	}
	s.mu.Unlock()
	s.notify()
}

// DelayFor schedules fn to run no earlier than d from now.
func (s *Scheduler) DelayFor(d time.Duration, fn func()) {
	s.DelayUntil(time.Now().Add(d), fn)
}

// Clear discards all pending actions. A callback already running is not
// interrupted.
func (s *Scheduler) Clear() {
	s.mu.Lock()
	s.actions = heap.Heap[action, heap.Min]{}
	s.pending = 0
	if s.inst != nil {
		s.inst.pending.Set(0)
	}
	s.mu.Unlock()
	s.notify()
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stop shuts the scheduler down: pending actions are discarded, and the
// worker, if it ever started, is joined. Further Delay calls are dropped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.done = true
	started := s.started
	s.mu.Unlock()
	s.notify()
	if started {
		<-s.stopped
	}
}

// runTopLocked pops and executes the earliest due action. The lock is
// released while the callback runs.
func (s *Scheduler) runTopLocked() {
	if s.done {
		return
	}
	top, ok := heap.Peek(&s.actions)
	if !ok || top.at.After(time.Now()) {
		return
	}
	a, _ := heap.PopOrderable(&s.actions)
	s.pending--
	if s.inst != nil {
		s.inst.executed.Inc()
		s.inst.pending.Set(float64(s.pending))
	}

	s.mu.Unlock()
	func() {
		defer func() { _ = recover() }()
		a.fn()
	}()
	s.mu.Lock()
}

// worker sleeps until the earliest deadline or a nudge, then runs whatever
// is due.
func (s *Scheduler) worker() {
	defer close(s.stopped)

	s.mu.Lock()
	for !s.done {
		wait := idleWait
		if top, ok := heap.Peek(&s.actions); ok {
			wait = time.Until(top.at)
		}
		s.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			s.mu.Lock()
			s.runTopLocked()
		case <-s.wake:
			timer.Stop()
			s.mu.Lock()
		}
	}
	s.mu.Unlock()
}
