package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistryCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.QueueItems.WithLabelValues("q1").Add(5)
	r.QueueDropped.WithLabelValues("q1").Add(2)
	r.QueueDepth.WithLabelValues("q1").Set(3)
	r.ActionsScheduled.WithLabelValues("s1").Inc()
	r.PoolWorkers.WithLabelValues("p1").Set(4)

	if got := testutil.ToFloat64(r.QueueItems.WithLabelValues("q1")); got != 5 {
		t.Fatalf("items counter = %v, want 5", got)
	}
	if got := testutil.ToFloat64(r.QueueDropped.WithLabelValues("q1")); got != 2 {
		t.Fatalf("dropped counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.QueueDepth.WithLabelValues("q1")); got != 3 {
		t.Fatalf("depth gauge = %v, want 3", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Fatal("default config must enable metrics")
	}
	if cfg.Registry == nil {
		t.Fatal("default config must carry a registerer")
	}
}
