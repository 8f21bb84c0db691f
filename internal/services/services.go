package services

import (
	"sync"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	dlqpublisher "bitbucket.org/adsa/go-reservation-ledger/internal/common/dlq_publisher"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/nibo"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/retry"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/stays"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/repositories"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services/rules"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	staysClient stays.Client
	niboClient  nibo.Client
	rules       *rules.Engine
	dlq         dlqpublisher.Publisher
	retryer     retry.Retryer
	metrics     metrics.Metrics
	now         func() time.Time

	// how long an event waits for another process holding its reservation, zero disables locking
	reservationLockWait time.Duration

	// pending audit writes, waited for on shutdown
	auditWG sync.WaitGroup

	common service

	Normalizer     *normalizer
	Reconciler     *reconciler
	EventProcessor *eventProcessor
	Audit          *audit
	Reservation    *reservation
	Ledger         *ledger
	Job            *job
}

type Option func(*Services)

// WithClock replaces the wall clock used for the stale check and audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Services) {
		s.now = now
	}
}

// WithDLQ enables publishing of failed events.
func WithDLQ(p dlqpublisher.Publisher) Option {
	return func(s *Services) {
		s.dlq = p
	}
}

// WithReservationLock serializes the ledger writes of one reservation across processes through
// the cache repository. An event gives up and fails after waiting wait for the lock.
func WithReservationLock(wait time.Duration) Option {
	return func(s *Services) {
		s.reservationLockWait = wait
	}
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	staysClient stays.Client,
	niboClient nibo.Client,
	retryer retry.Retryer,
	metrics metrics.Metrics,
	opts ...Option,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		cacheRepo:   cacheRepo,
		staysClient: staysClient,
		niboClient:  niboClient,
		rules:       rules.New(conf.Rules),
		retryer:     retryer,
		metrics:     metrics,
		now:         common.Now,
	}
	for _, opt := range opts {
		opt(srv)
	}

	srv.common.srv = srv
	srv.Normalizer = (*normalizer)(&srv.common)
	srv.Reconciler = (*reconciler)(&srv.common)
	srv.EventProcessor = (*eventProcessor)(&srv.common)
	srv.Audit = (*audit)(&srv.common)
	srv.Reservation = (*reservation)(&srv.common)
	srv.Ledger = (*ledger)(&srv.common)
	srv.Job = (*job)(&srv.common)

	return srv
}

func (s *Services) staleAfterDays() int {
	if s.conf.Rules.StaleAfterDays <= 0 {
		return 30
	}
	return s.conf.Rules.StaleAfterDays
}
