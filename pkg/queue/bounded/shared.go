package bounded

import (
	"sync/atomic"

	"github.com/vnykmshr/goasync/pkg/coordination/flags"
)

// Reader is a consuming handle on a shared queue. Readers can be copied
// freely and independently of writers; they do not keep the queue open.
type Reader[T any] struct {
	*Queue[T]
}

// terminator tracks the live writer count for a shared queue and finishes
// the queue exactly once when the last writer is released.
type terminator[T any] struct {
	q     *Queue[T]
	refs  atomic.Int64
	fired flags.Done
}

func (t *terminator[T]) release() {
	if t.refs.Add(-1) > 0 {
		return
	}
	if !t.fired.Set() {
		t.q.Finish()
	}
}

// Writer is a producing handle on a shared queue. Each Writer copy obtained
// through Clone must be released with Close; when the last one is closed,
// the queue is finished so blocked readers drain to Empty instead of
// waiting forever.
type Writer[T any] struct {
	Reader[T]
	term *terminator[T]
}

// NewShared creates a shared queue and returns its first writer handle.
func NewShared[T any](capacity int) Writer[T] {
	q := New[T](capacity)
	term := &terminator[T]{q: q, fired: flags.NewDone()}
	term.refs.Add(1)
	return Writer[T]{Reader: Reader[T]{Queue: q}, term: term}
}

// AsReader returns a reader on the same queue. The reader does not hold the
// queue open and stays usable after all writers are closed.
func (w Writer[T]) AsReader() Reader[T] {
	return w.Reader
}

// Clone returns an additional writer handle on the same queue. The queue
// stays open until every clone (and the original) is closed.
func (w Writer[T]) Clone() Writer[T] {
	w.term.refs.Add(1)
	return w
}

// Close releases this writer handle. Closing the last handle finishes the
// queue. Each handle must be closed exactly once.
func (w Writer[T]) Close() {
	w.term.release()
}
