package waiter

import (
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/goasync/internal/testutil"
)

func TestBarrierZeroCountPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	NewBarrier(0, nil)
}

func TestBarrierOfOneReturnsImmediately(t *testing.T) {
	b := NewBarrier(1, func(n uint64) uint64 { return n + 1 })

	done := make(chan struct{})
	go func() {
		b.CountDownAndWait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(testutil.TestTimeout):
		t.Fatal("barrier of one did not trip")
	}
	testutil.AssertEqual(t, b.ResetCount(), uint64(2))
}

func TestBarrierResetCountAdvancesPerCycle(t *testing.T) {
	b := NewBarrier(1, func(n uint64) uint64 { return n + 1 })

	b.CountDownAndWait()
	testutil.AssertEqual(t, b.ResetCount(), uint64(2))

	// second cycle needs two participants now
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.CountDownAndWait()
		}()
	}
	wg.Wait()
	testutil.AssertEqual(t, b.ResetCount(), uint64(3))
}

func TestBarrierReleasesAllParticipants(t *testing.T) {
	const parties = 4
	b := NewBarrier(parties, nil)

	for cycle := 0; cycle < 3; cycle++ {
		var wg sync.WaitGroup
		for i := 0; i < parties; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				testutil.AssertEqual(t, b.CountDownAndWaitFor(testutil.TestTimeout), true)
			}()
		}
		wg.Wait()
		testutil.AssertEqual(t, b.ResetCount(), uint64(parties))
	}
}

func TestBarrierWaitForTimesOut(t *testing.T) {
	b := NewBarrier(2, nil)

	testutil.AssertEqual(t, b.CountDownAndWaitFor(10*time.Millisecond), false)
}

func TestBarrierShrinkingReset(t *testing.T) {
	b := NewBarrier(2, func(n uint64) uint64 {
		if n > 1 {
			return n - 1
		}
		return 1
	})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.CountDownAndWait()
		}()
	}
	wg.Wait()

	// reset function shrank the barrier to a single participant
	testutil.AssertEqual(t, b.ResetCount(), uint64(1))
	b.CountDownAndWait()
}
