package lazypool

import (
	"sync"

	"github.com/gammazero/deque"
)

// Pool runs jobs on workers that exist only while work exists. Each AddJob
// spawns a worker if the pool is below its maximum; a worker drains jobs
// until the queue is empty and then retires. An idle pool holds no
// goroutines at all.
//
// Close waits for every job accepted before the call to finish. Calling
// AddJob concurrently with Close is undefined; the owner ensures quiescence.
type Pool struct {
	mu      sync.Mutex
	max     int
	jobs    deque.Deque[func()]
	workers int

	// terminating is armed lazily by Close so the accepting path pays
	// nothing for it.
	terminating chan struct{}

	inst *instrumentation
}

// New creates a pool running at most maxWorkers jobs concurrently. Panics
// if maxWorkers is not positive.
func New(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		panic("lazypool: max workers must be positive")
	}
	return &Pool{max: maxWorkers}
}

// AddJob enqueues fn and spawns a worker for it if the pool has capacity.
// It always reports true: jobs are unbounded, only workers are capped.
func (p *Pool) AddJob(fn func()) bool {
	p.mu.Lock()
	p.jobs.PushBack(fn)
	if p.inst != nil {
		p.inst.jobs.Inc()
	}
	if p.workers < p.max {
		p.workers++
		if p.inst != nil {
			p.inst.workers.Set(float64(p.workers))
		}
		go p.worker()
	}
	p.mu.Unlock()
	return true
}

// worker drains jobs until none remain, then retires. The last worker out
// releases a waiting Close.
func (p *Pool) worker() {
	for {
		p.mu.Lock()
		if p.jobs.Len() == 0 {
			p.workers--
			if p.inst != nil {
				p.inst.workers.Set(float64(p.workers))
			}
			if p.terminating != nil && p.workers == 0 {
				close(p.terminating)
			}
			p.mu.Unlock()
			return
		}
		fn := p.jobs.PopFront()
		p.mu.Unlock()

		func() {
			defer func() { _ = recover() }()
			fn()
		}()
	}
}

// Close blocks until the worker set is empty, which implies all accepted
// jobs have run. The pool must not be used afterwards.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.workers == 0 {
		p.mu.Unlock()
		return
	}
	if p.terminating == nil {
		p.terminating = make(chan struct{})
	}
	ch := p.terminating
	p.mu.Unlock()
	<-ch
}

// Workers returns the number of live workers.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Backlog returns the number of jobs not yet picked up by a worker.
func (p *Pool) Backlog() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jobs.Len()
}
