package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type DLQPrometheusMetrics struct {
	publishDurationHist *prometheus.HistogramVec
	publishedCount      *prometheus.CounterVec
}

func newDLQPrometheusMetrics(reg prometheus.Registerer) *DLQPrometheusMetrics {
	m := &DLQPrometheusMetrics{
		publishDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dlq_publish_duration_seconds",
				Help:    "Duration of publishing a failed reservation event.",
				Buckets: []float64{0.001, 0.010, 0.050, 0.100, 0.500, 1, 2, 5},
			},
			[]string{"topic"},
		),
		publishedCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dlq_messages_total",
				Help: "Failed reservation events sent to the dead letter topic, by result.",
			},
			[]string{"topic", "result"},
		),
	}

	reg.MustRegister(m.publishDurationHist, m.publishedCount)
	return m
}

func (m *DLQPrometheusMetrics) RecordPublish(startTime time.Time, topic string, publishErr error) {
	m.publishDurationHist.WithLabelValues(topic).Observe(time.Since(startTime).Seconds())

	result := "ok"
	if publishErr != nil {
		result = "error"
	}
	m.publishedCount.WithLabelValues(topic, result).Inc()
}
