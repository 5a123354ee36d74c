package lazypool

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goasync/pkg/metrics"
)

// instrumentation holds the resolved per-pool metric instances.
type instrumentation struct {
	jobs    prometheus.Counter
	workers prometheus.Gauge
}

// NewWithMetrics creates a pool that reports job and worker metrics under
// the given name via the default metrics registry.
func NewWithMetrics(maxWorkers int, name string) *Pool {
	return NewWithRegistry(maxWorkers, name, metrics.DefaultRegistry)
}

// NewWithRegistry is NewWithMetrics against a specific registry.
func NewWithRegistry(maxWorkers int, name string, reg *metrics.Registry) *Pool {
	p := New(maxWorkers)
	p.inst = &instrumentation{
		jobs:    reg.PoolJobs.WithLabelValues(name),
		workers: reg.PoolWorkers.WithLabelValues(name),
	}
	return p
}
