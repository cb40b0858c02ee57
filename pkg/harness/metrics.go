package harness

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for lint runs. All metrics live
// under the tycho_lint namespace.
type Metrics struct {
	registry *prometheus.Registry

	scriptsLinted prometheus.Counter
	blocksBuilt   prometheus.Counter
	failures      *prometheus.CounterVec
}

// NewMetrics creates a metrics collector registered on the given
// registry. If registry is nil, a fresh one is created.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		scriptsLinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tycho",
			Subsystem: "lint",
			Name:      "scripts_total",
			Help:      "Total number of scripts linted.",
		}),
		blocksBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tycho",
			Subsystem: "lint",
			Name:      "blocks_total",
			Help:      "Total number of transaction blocks built.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tycho",
			Subsystem: "lint",
			Name:      "failures_total",
			Help:      "Total number of lint failures by kind.",
		}, []string{"kind"}),
	}

	registry.MustRegister(m.scriptsLinted, m.blocksBuilt, m.failures)
	return m
}

// RecordReport records one lint report.
func (m *Metrics) RecordReport(report *Report) {
	m.scriptsLinted.Inc()
	if report.Error != "" {
		m.failures.WithLabelValues("script").Inc()
	}
	for _, b := range report.Blocks {
		m.blocksBuilt.Inc()
		if b.Error != "" {
			m.failures.WithLabelValues("block").Inc()
		}
	}
}

// Handler returns an HTTP handler exposing the metrics in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
