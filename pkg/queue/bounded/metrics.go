package bounded

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goasync/pkg/metrics"
)

// instrumentation holds the resolved per-queue metric instances.
type instrumentation struct {
	items   prometheus.Counter
	dropped prometheus.Counter
	depth   prometheus.Gauge
}

// NewWithMetrics creates a queue that reports push, drop, and depth metrics
// under the given name via the default metrics registry.
func NewWithMetrics[T any](capacity int, name string) *Queue[T] {
	return NewWithRegistry[T](capacity, name, metrics.DefaultRegistry)
}

// NewWithRegistry is NewWithMetrics against a specific registry.
func NewWithRegistry[T any](capacity int, name string, reg *metrics.Registry) *Queue[T] {
	q := New[T](capacity)
	q.inst = &instrumentation{
		items:   reg.QueueItems.WithLabelValues(name),
		dropped: reg.QueueDropped.WithLabelValues(name),
		depth:   reg.QueueDepth.WithLabelValues(name),
	}
	return q
}
