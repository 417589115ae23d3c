// README: Prometheus metrics for HTTP traffic, upstream feeds, and generation calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// UpstreamCallsTotal counts hazard-feed fetches by source ("weather",
	// "quake", "alerts") and outcome ("ok", "error").
	UpstreamCallsTotal *prometheus.CounterVec

	// GenerationDuration tracks end-to-end latency of text-generation calls
	// by adapter ("guide", "hotel", "itinerary").
	GenerationDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		UpstreamCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_calls_total",
				Help: "Hazard feed fetches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		GenerationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "generation_duration_seconds",
				Help:    "Text generation latency by adapter",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
			},
			[]string{"adapter"},
		),
	}
}

// RecordUpstream is nil-safe so services built without metrics (tests) work unchanged.
func (m *Metrics) RecordUpstream(source string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamCallsTotal.WithLabelValues(source, outcome).Inc()
}
