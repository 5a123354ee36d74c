package lazypool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/goasync/internal/testutil"
)

func TestNewPanicsOnBadMax(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	New(0)
}

func TestAllJobsRunBeforeCloseReturns(t *testing.T) {
	p := New(4)

	var counter atomic.Int32
	for i := 0; i < 10; i++ {
		p.AddJob(func() {
			time.Sleep(10 * time.Millisecond)
			counter.Add(1)
		})
	}
	p.Close()

	testutil.AssertEqual(t, counter.Load(), int32(10))
	testutil.AssertEqual(t, p.Workers(), 0)
	testutil.AssertEqual(t, p.Backlog(), 0)
}

func TestWorkerCountNeverExceedsMax(t *testing.T) {
	const max = 4
	p := New(max)

	var live atomic.Int32
	var peak atomic.Int32
	for i := 0; i < 10; i++ {
		p.AddJob(func() {
			n := live.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			live.Add(-1)
		})
	}
	p.Close()

	if got := peak.Load(); got > max {
		t.Fatalf("%d jobs ran concurrently, max is %d", got, max)
	}
}

func TestIdlePoolHoldsNoWorkers(t *testing.T) {
	p := New(2)

	done := make(chan struct{})
	p.AddJob(func() { close(done) })
	<-done

	testutil.Eventually(t, func() bool { return p.Workers() == 0 }, "workers retire when idle")

	// the pool accepts new work after going idle
	var ran atomic.Bool
	p.AddJob(func() { ran.Store(true) })
	p.Close()
	testutil.AssertEqual(t, ran.Load(), true)
}

func TestCloseOnIdlePoolReturnsImmediately(t *testing.T) {
	p := New(2)
	p.Close()
}

func TestJobPanicDoesNotKillPool(t *testing.T) {
	p := New(1)

	var after atomic.Bool
	p.AddJob(func() { panic("boom") })
	p.AddJob(func() { after.Store(true) })
	p.Close()

	testutil.AssertEqual(t, after.Load(), true)
}

func TestManyConcurrentSubmitters(t *testing.T) {
	p := New(8)

	const submitters = 8
	const perSubmitter = 100
	var counter atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSubmitter; j++ {
				p.AddJob(func() { counter.Add(1) })
			}
		}()
	}
	wg.Wait()
	p.Close()

	testutil.AssertEqual(t, counter.Load(), int32(submitters*perSubmitter))
}
