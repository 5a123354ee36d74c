package repeat_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vnykmshr/goasync/pkg/scheduling/repeat"
)

// Example polls until a condition holds, then stops itself.
func Example() {
	var polls atomic.Int32

	g := repeat.Every(time.Millisecond, repeat.RunUntil(func() bool {
		return polls.Add(1) >= 3
	}))

	if err := g.Wait(); err != nil {
		fmt.Println("poll failed:", err)
		return
	}
	fmt.Println("condition reached")

	// Output: condition reached
}
