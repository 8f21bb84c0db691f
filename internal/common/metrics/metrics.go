package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	saramaMetrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	EchoMiddleware(serviceName string) echo.MiddlewareFunc
	SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetUpstreamPrometheus() *UpstreamPrometheusMetrics
	GetDLQPrometheus() *DLQPrometheusMetrics
	GetReconciliationPrometheus() *ReconciliationPrometheusMetrics
}

type metrics struct {
	reg                   prometheus.Registerer
	upstreamMetrics       *UpstreamPrometheusMetrics
	dlqMetrics            *DLQPrometheusMetrics
	reconciliationMetrics *ReconciliationPrometheusMetrics
}

// New registers on the prometheus default registerer, which is what /metrics serves.
func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer lets tests use their own registry.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:                   reg,
		upstreamMetrics:       newUpstreamPrometheusMetrics(reg),
		dlqMetrics:            newDLQPrometheusMetrics(reg),
		reconciliationMetrics: newReconciliationPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  FlattenName(serviceName),
		Subsystem:  "http",
		Registerer: m.reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) saramaMetrics.Registry {
	appMetrics := saramaMetrics.NewPrefixedRegistry(FlattenName(name) + "_")
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		appMetrics, "", "", m.reg, flushInterval,
	)
	go prometheusClient.UpdatePrometheusMetrics()

	return appMetrics
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetUpstreamPrometheus() *UpstreamPrometheusMetrics {
	return m.upstreamMetrics
}

func (m *metrics) GetDLQPrometheus() *DLQPrometheusMetrics {
	return m.dlqMetrics
}

func (m *metrics) GetReconciliationPrometheus() *ReconciliationPrometheusMetrics {
	return m.reconciliationMetrics
}
