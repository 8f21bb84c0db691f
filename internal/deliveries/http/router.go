package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/graceful"
	commonhttp "bitbucket.org/adsa/go-reservation-ledger/internal/common/http"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/http/middleware"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http/health"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http/webhook"
	"bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/queue"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	v1nibo "bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http/v1/nibo"
	v1reservation "bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http/v1/reservation"
	v1stays "bitbucket.org/adsa/go-reservation-ledger/internal/deliveries/http/v1/stays"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, mostly for tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title RESERVATION LEDGER API DOCUMENTATION
// @version 1.0
// @description Receives reservation webhooks and keeps the ledger in sync.

// @host localhost:8080
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	metrics metrics.Metrics,
	q queue.Queue,
	auditService services.AuditService,
	eventProcessorService services.EventProcessorService,
	reservationService services.ReservationService,
	ledgerService services.LedgerService,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: conf.App.HTTPTimeout,
		}))
	}

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute(xlog.HeaderCorrelationID, xlog.GetCorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if config.StringToEnvironment(conf.App.Env).DebugAllowed() {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(metrics.EchoMiddleware(conf.App.Name))
	app.GET("/metrics", echo.WrapHandler(metricsHandler(metrics)))

	// apiGroup
	apiGroup := app.Group("/api")

	health.New(apiGroup, q)
	webhook.New(apiGroup, q, auditService, m)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	v1Group.Use(m.InternalAuth())
	v1reservation.New(v1Group, reservationService, eventProcessorService, auditService, q)
	v1stays.New(v1Group, reservationService)
	v1nibo.New(v1Group, ledgerService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	xlog.Info(ctx, "[HTTP] routes registered", xlog.Int("port", conf.App.HTTPPort))

	return svc
}

func metricsHandler(m metrics.Metrics) nethttp.Handler {
	if g, ok := m.PrometheusRegisterer().(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
