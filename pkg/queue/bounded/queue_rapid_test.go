package bounded

import (
	"testing"

	"pgregory.net/rapid"
)

// Exercises random push/pop/finish sequences and checks the counter
// invariants at every step.
func TestQueueInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 16).Draw(t, "capacity")
		q := New[int](capacity)

		model := 0 // elements currently queued
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				ok := q.Push(i)
				wantOK := !q.Done() && model < capacity
				if ok != wantOK {
					t.Fatalf("push accepted=%v, want %v", ok, wantOK)
				}
				if ok {
					model++
				}
			case 1:
				r := q.TryPop()
				if model == 0 && r.Valid() {
					t.Fatalf("popped %v from an empty queue", r.Value)
				}
				if model > 0 && !r.Valid() {
					t.Fatalf("empty result with %d elements queued", model)
				}
				if r.Valid() {
					model--
				}
			case 2:
				if rapid.IntRange(0, 9).Draw(t, "finish") == 0 {
					q.Finish()
				}
			}

			if q.Len() != model {
				t.Fatalf("size %d, model %d", q.Len(), model)
			}
			if q.Len() > capacity {
				t.Fatalf("size %d exceeds capacity %d", q.Len(), capacity)
			}
			if q.ItemCount() < uint64(q.Len())+q.DroppedItemCount() {
				t.Fatalf("item count %d below size %d + dropped %d",
					q.ItemCount(), q.Len(), q.DroppedItemCount())
			}
		}
	})
}

// FIFO order holds for any interleaving of batch and single pushes.
func TestQueueFIFOProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 0, 64).Draw(t, "values")
		q := New[int](len(values) + 1)

		if rapid.Bool().Draw(t, "batch") {
			q.PushBatch(values)
		} else {
			for _, v := range values {
				q.Push(v)
			}
		}

		for i, want := range values {
			r := q.TryPop()
			if !r.Valid() || r.Value != want {
				t.Fatalf("pop %d: got %v, want valid(%d)", i, r, want)
			}
		}
		if r := q.TryPop(); r.Valid() {
			t.Fatalf("extra element %v", r.Value)
		}
	})
}
