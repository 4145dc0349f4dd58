// Package metrics holds the Prometheus collectors of the resolve service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the default one.
type Metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	tokens      prometheus.Histogram
	duration    *prometheus.HistogramVec
}

// New creates and registers all collectors, including the Go runtime
// collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clsx_resolutions_total",
			Help: "Resolutions by outcome (present or absent).",
		}, []string{"outcome"}),
		tokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "clsx_tokens",
			Help:    "Number of class names in resolved outputs.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clsx_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.resolutions,
		m.tokens,
		m.duration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveResolution records one resolution result.
func (m *Metrics) ObserveResolution(class string, present bool) {
	if !present {
		m.resolutions.WithLabelValues("absent").Inc()
		m.tokens.Observe(0)
		return
	}
	m.resolutions.WithLabelValues("present").Inc()
	m.tokens.Observe(float64(countTokens(class)))
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.duration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// countTokens counts space-separated names in a resolved class string,
// which is canonical: single spaces, no leading or trailing space.
func countTokens(class string) int {
	if class == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(class); i++ {
		if class[i] == ' ' {
			n++
		}
	}
	return n
}
