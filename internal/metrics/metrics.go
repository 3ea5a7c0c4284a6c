// Package metrics exposes Prometheus instrumentation for engine runs and
// consensus verdicts. Collectors are registered on an instance-owned
// registry, never the global default, so tests and multiple apps stay
// isolated.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/consensus"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/scheduler"
)

// Metrics holds the collectors for one application instance. It implements
// scheduler.Observer.
type Metrics struct {
	registry *prometheus.Registry

	engineRuns  *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	verdicts    *prometheus.CounterVec
}

// New creates the collectors on a fresh Prometheus registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		engineRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantheon",
			Name:      "engine_runs_total",
			Help:      "Engine runs by engine name and outcome status.",
		}, []string{"legend", "status"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pantheon",
			Name:      "engine_run_duration_seconds",
			Help:      "Wall-clock duration of individual engine runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"legend"}),
		verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantheon",
			Name:      "consensus_verdicts_total",
			Help:      "Consensus verdicts by signal and quality grade.",
		}, []string{"signal", "quality"}),
	}
}

// Registry returns the instance-owned Prometheus registry for exposure.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRun implements scheduler.Observer.
func (m *Metrics) ObserveRun(legend string, status scheduler.Status, elapsed time.Duration) {
	m.engineRuns.WithLabelValues(legend, status.String()).Inc()
	m.runDuration.WithLabelValues(legend).Observe(elapsed.Seconds())
}

// ObserveVerdict counts one consensus result.
func (m *Metrics) ObserveVerdict(r consensus.Result) {
	m.verdicts.WithLabelValues(string(r.Signal), string(r.Quality)).Inc()
}
