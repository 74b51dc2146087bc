// Package metrics holds Prometheus collectors shared by the HTTP surface.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "passrate"

// HTTP groups request-level collectors for the API server.
type HTTP struct {
	// Requests counts finished requests by method, route and status code.
	Requests *prometheus.CounterVec
	// Duration observes request latency in seconds by method and route.
	Duration *prometheus.HistogramVec
}

// NewHTTP creates the HTTP collectors and registers them with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	m := &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of HTTP requests handled, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds, by method and route.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register http collector: %w", err)
		}
	}

	return m, nil
}
