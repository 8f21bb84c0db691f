package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamPrometheusMetrics covers calls to the reservation platform and the ledger.
type UpstreamPrometheusMetrics struct {
	durationHist  *prometheus.HistogramVec
	failureCount  *prometheus.CounterVec
	responseCount *prometheus.CounterVec
}

func newUpstreamPrometheusMetrics(reg prometheus.Registerer) *UpstreamPrometheusMetrics {
	m := &UpstreamPrometheusMetrics{
		durationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of upstream API requests in seconds, retries included.",
				Buckets: []float64{0.010, 0.050, 0.100, 0.250, 0.500, 1, 2, 5, 10, 30},
			},
			[]string{"upstream", "method", "endpoint"},
		),
		responseCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_responses_total",
				Help: "Upstream responses by status code.",
			},
			[]string{"upstream", "method", "endpoint", "response_code"},
		),
		failureCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_transport_failures_total",
				Help: "Upstream requests that got no response at all.",
			},
			[]string{"upstream", "method", "endpoint"},
		),
	}

	reg.MustRegister(m.durationHist, m.responseCount, m.failureCount)
	return m
}

// Record endpoint must be the route template, never a path with ids in it.
func (m *UpstreamPrometheusMetrics) Record(duration time.Duration, upstream, method, endpoint string, statusCode int) {
	m.durationHist.WithLabelValues(upstream, method, endpoint).Observe(duration.Seconds())
	m.responseCount.WithLabelValues(upstream, method, endpoint, strconv.Itoa(statusCode)).Inc()
}

func (m *UpstreamPrometheusMetrics) RecordFailure(duration time.Duration, upstream, method, endpoint string) {
	m.durationHist.WithLabelValues(upstream, method, endpoint).Observe(duration.Seconds())
	m.failureCount.WithLabelValues(upstream, method, endpoint).Inc()
}
