// Package metrics provides Prometheus instrumentation for goasync components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goasync components.
type Registry struct {
	// Bounded queue metrics
	QueueItems   *prometheus.CounterVec
	QueueDropped *prometheus.CounterVec
	QueueDepth   *prometheus.GaugeVec

	// Timer queue metrics
	ActionsScheduled *prometheus.CounterVec
	ActionsExecuted  *prometheus.CounterVec
	ActionsPending   *prometheus.GaugeVec

	// Lazy pool metrics
	PoolJobs    *prometheus.CounterVec
	PoolWorkers *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by goasync components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		QueueItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "queue",
				Name:      "items_total",
				Help:      "Total number of push attempts",
			},
			[]string{"queue_name"},
		),

		QueueDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "queue",
				Name:      "dropped_total",
				Help:      "Total number of rejected push attempts",
			},
			[]string{"queue_name"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "queue",
				Name:      "depth",
				Help:      "Current number of queued elements",
			},
			[]string{"queue_name"},
		),

		ActionsScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "timerqueue",
				Name:      "actions_scheduled_total",
				Help:      "Total number of actions scheduled",
			},
			[]string{"scheduler_name"},
		),

		ActionsExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "timerqueue",
				Name:      "actions_executed_total",
				Help:      "Total number of actions executed",
			},
			[]string{"scheduler_name"},
		),

		ActionsPending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "timerqueue",
				Name:      "actions_pending",
				Help:      "Number of actions waiting for their deadline",
			},
			[]string{"scheduler_name"},
		),

		PoolJobs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goasync",
				Subsystem: "lazypool",
				Name:      "jobs_total",
				Help:      "Total number of jobs accepted",
			},
			[]string{"pool_name"},
		),

		PoolWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goasync",
				Subsystem: "lazypool",
				Name:      "workers",
				Help:      "Number of live workers",
			},
			[]string{"pool_name"},
		),
	}
}
