package timerqueue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goasync/pkg/metrics"
)

// instrumentation holds the resolved per-scheduler metric instances.
type instrumentation struct {
	scheduled prometheus.Counter
	executed  prometheus.Counter
	pending   prometheus.Gauge
}

// NewWithMetrics creates a scheduler that reports scheduled, executed, and
// pending action metrics under the given name via the default metrics
// registry.
func NewWithMetrics(name string) *Scheduler {
	return NewWithRegistry(name, metrics.DefaultRegistry)
}

// NewWithRegistry is NewWithMetrics against a specific registry.
func NewWithRegistry(name string, reg *metrics.Registry) *Scheduler {
	s := New()
	s.inst = &instrumentation{
		scheduled: reg.ActionsScheduled.WithLabelValues(name),
		executed:  reg.ActionsExecuted.WithLabelValues(name),
		pending:   reg.ActionsPending.WithLabelValues(name),
	}
	return s
}
