package flags

import (
	"sync"
	"testing"

	"github.com/vnykmshr/goasync/internal/testutil"
)

func TestDoneSetReturnsPreviousValue(t *testing.T) {
	d := NewDone()

	testutil.AssertEqual(t, d.Set(), false)
	testutil.AssertEqual(t, d.Set(), true)
	testutil.AssertEqual(t, d.Set(), true)
	testutil.AssertEqual(t, d.IsSet(), true)
}

func TestDoneExactlyOneWinner(t *testing.T) {
	d := NewDone()

	const goroutines = 32
	var wg sync.WaitGroup
	winners := make(chan int, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if !d.Set() {
				winners <- id
			}
		}(i)
	}
	wg.Wait()
	close(winners)

	count := 0
	for range winners {
		count++
	}
	testutil.AssertEqual(t, count, 1)
}

func TestDoneCopiesShareState(t *testing.T) {
	d := NewDone()
	copied := d

	testutil.AssertEqual(t, copied.Set(), false)
	testutil.AssertEqual(t, d.Set(), true)
}

func TestFlagExchange(t *testing.T) {
	f := NewFlag(false)

	testutil.AssertEqual(t, f.Bool(), false)
	testutil.AssertEqual(t, f.Set(true), false)
	testutil.AssertEqual(t, f.Set(true), true)
	testutil.AssertEqual(t, f.Set(false), true)
	testutil.AssertEqual(t, f.Bool(), false)
}

func TestFlagInitialValue(t *testing.T) {
	f := NewFlag(true)

	testutil.AssertEqual(t, f.Bool(), true)
	testutil.AssertEqual(t, f.Set(false), true)
}
