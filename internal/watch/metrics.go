package watch

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects rebuild counters for the dev server's /metrics endpoint.
type Metrics struct {
	registry *prometheus.Registry
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates a metrics collector with its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simpblog_builds_total",
		Help: "Number of build invocations by outcome.",
	}, []string{"outcome"})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simpblog_build_duration_seconds",
		Help:    "Duration of build invocations.",
		Buckets: prometheus.DefBuckets,
	})

	reg.MustRegister(builds, duration)

	return &Metrics{registry: reg, builds: builds, duration: duration}
}

// ObserveBuild records one build invocation.
func (m *Metrics) ObserveBuild(err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.builds.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// Handler serves the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
