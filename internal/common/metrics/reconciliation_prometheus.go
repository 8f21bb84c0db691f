package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type ReconciliationPrometheusMetrics struct {
	outcomeCounter   *prometheus.CounterVec
	durationHist     *prometheus.HistogramVec
	scheduleCounter  *prometheus.CounterVec
	queueDepthGauge  prometheus.Gauge
	droppedOnStopCnt prometheus.Counter
}

func newReconciliationPrometheusMetrics(reg prometheus.Registerer) *ReconciliationPrometheusMetrics {
	outcomeCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_ledger_events_total",
			Help: "Processed reservation events by action and final state.",
		},
		[]string{"action", "state"},
	)

	durationHist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reservation_ledger_event_duration_seconds",
			Help:    "Duration of one reservation event reconciliation in seconds.",
			Buckets: []float64{0.010, 0.100, 0.200, 0.500, 1, 2, 5, 10, 30, 60},
		},
		[]string{"action", "state"},
	)

	scheduleCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_ledger_schedule_operations_total",
			Help: "Ledger schedule operations by kind, operation and success.",
		},
		[]string{"kind", "operation", "success"},
	)

	queueDepthGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reservation_ledger_queue_depth",
		Help: "Reservation events waiting in the ingestion queue.",
	})

	droppedOnStopCnt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reservation_ledger_queue_dropped_total",
		Help: "Queued reservation events dropped at shutdown.",
	})

	reg.MustRegister(outcomeCounter, durationHist, scheduleCounter, queueDepthGauge, droppedOnStopCnt)

	return &ReconciliationPrometheusMetrics{
		outcomeCounter:   outcomeCounter,
		durationHist:     durationHist,
		scheduleCounter:  scheduleCounter,
		queueDepthGauge:  queueDepthGauge,
		droppedOnStopCnt: droppedOnStopCnt,
	}
}

func (m *ReconciliationPrometheusMetrics) RecordOutcome(startTime time.Time, action, state string) {
	m.outcomeCounter.WithLabelValues(action, state).Inc()
	m.durationHist.WithLabelValues(action, state).Observe(time.Since(startTime).Seconds())
}

func (m *ReconciliationPrometheusMetrics) RecordSchedule(kind, operation string, success bool) {
	label := "false"
	if success {
		label = "true"
	}
	m.scheduleCounter.WithLabelValues(kind, operation, label).Inc()
}

func (m *ReconciliationPrometheusMetrics) SetQueueDepth(n int) {
	m.queueDepthGauge.Set(float64(n))
}

func (m *ReconciliationPrometheusMetrics) AddDropped(n int) {
	m.droppedOnStopCnt.Add(float64(n))
}
