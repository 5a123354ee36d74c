package bounded_test

import (
	"fmt"

	"github.com/vnykmshr/goasync/pkg/queue/bounded"
)

// Example demonstrates the drop-on-full producer contract.
func Example() {
	q := bounded.New[string](3)

	for _, word := range []string{"Hello", " ", "World", "x", "y"} {
		q.Push(word)
	}
	q.Finish()

	for r := q.Pop(); r.Valid(); r = q.Pop() {
		fmt.Print(r.Value)
	}
	fmt.Printf("\npushed=%d dropped=%d\n", q.ItemCount(), q.DroppedItemCount())

	// Output:
	// Hello World
	// pushed=5 dropped=2
}

// Example_sharedLifetime shows readers draining once the last writer closes.
func Example_sharedLifetime() {
	w := bounded.NewShared[int](16)
	r := w.AsReader()

	go func() {
		defer w.Close()
		for i := 1; i <= 3; i++ {
			w.Push(i)
		}
	}()

	sum := 0
	for res := r.Pop(); res.Valid(); res = r.Pop() {
		sum += res.Value
	}
	fmt.Println(sum)

	// Output: 6
}
