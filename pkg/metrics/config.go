package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config describes a metrics setup. No constructor in this module reads a
// Config: components are instrumented only through their NewWithMetrics
// (DefaultRegistry) or NewWithRegistry constructors.
type Config struct {
	// Enabled records whether metrics collection is wanted.
	Enabled bool

	// Registry is the Prometheus registerer to use.
	Registry prometheus.Registerer
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Registry: prometheus.DefaultRegisterer,
	}
}
