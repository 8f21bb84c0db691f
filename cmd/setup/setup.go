package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common/cache"
	dlqpublisher "bitbucket.org/adsa/go-reservation-ledger/internal/common/dlq_publisher"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/graceful"
	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	cMetrics "bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/nibo"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/publisher"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/retry"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/stays"
	"bitbucket.org/adsa/go-reservation-ledger/internal/config"
	"bitbucket.org/adsa/go-reservation-ledger/internal/repositories"
	"bitbucket.org/adsa/go-reservation-ledger/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"

	reservationLockWait = 30 * time.Second
)

type Setup struct {
	Config          config.Config
	NewRelic        *newrelic.Application
	DB              *sql.DB
	Cache           *redis.Client
	RepoSQL         repositories.SQLRepository
	RepoCache       repositories.CacheRepository
	Service         *services.Services
	PublisherClient *PublisherClient
	Metrics         cMetrics.Metrics
}

// Init wires every dependency of command. Postgres, redis and kafka are optional: without
// postgres the audit trail and replay are off, without redis job locks are off and the
// id cache stays in memory, without brokers failed events are only logged.
func Init(command string, opts ...config.LoaderOption) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(opts...)
	if err != nil {
		return
	}

	env := config.StringToEnvironment(cfg.App.Env)
	defaultLevel := xlog.InfoLogLevel()
	if env.DebugAllowed() {
		defaultLevel = xlog.DebugLogLevel()
	}

	if err = xlog.Init(cfg.App.Name, env.String(), xlog.ParseLevel(cfg.App.LogLevel, defaultLevel)); err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			newRelic.Shutdown(5 * time.Second)
			return nil
		})
	}

	// metrics
	mtc := cMetrics.New()

	var (
		db        *sql.DB
		sqlRepo   repositories.SQLRepository
		cacheRepo repositories.CacheRepository
		redisConn *redis.Client
	)

	if cfg.Postgres.DbHost != "" {
		db, err = initDB(cfg.Postgres)
		if err != nil {
			err = fmt.Errorf("failed connect to database: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				return fmt.Errorf("failed to close db: %w", err)
			}
			return nil
		})

		// register DB stat prometheus metrics
		if err = mtc.RegisterDB(db, cfg.App.Name+"-"+command, cfg.Postgres.DbName); err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		sqlRepo = repositories.NewSQLRepository(db, db, cfg)
		if err = sqlRepo.Ping(ctx); err != nil {
			err = fmt.Errorf("failed connect to database: %w", err)
			return
		}
	} else {
		xlog.Warn(ctx, "[SETUP] postgres is not configured, audit trail is disabled")
	}

	if cfg.Redis.Host != "" {
		redisConn = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if _, err = redisConn.Ping(ctx).Result(); err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return redisConn.Close() })

		// register redis prometheus metrics
		if err = mtc.RegisterRedis(redisConn, cfg.App.Name, command); err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}

		cacheRepo = repositories.NewCacheRepository(redisConn)
	}

	idCache, closeCache, err := setupIDCache(cfg, redisConn)
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		closeCache()
		return nil
	})

	staysClient := stays.New(cfg.Stays, mtc)
	niboClient := nibo.New(cfg.Nibo.Client, mtc, idCache, cfg.Cache.TTL)

	var srvOpts []services.Option
	if cacheRepo != nil {
		// the api dispatcher and worker commands may touch the same reservation
		srvOpts = append(srvOpts, services.WithReservationLock(reservationLockWait))
	}
	var publisherClient *PublisherClient
	if len(cfg.MessageBroker.Brokers) > 0 && cfg.MessageBroker.TopicDLQ != "" {
		producer, errProducer := publisher.NewKafkaSyncProducer(
			cfg.MessageBroker.Brokers,
			publisher.WithClientID(cfg.App.Name+"-"+command),
			publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"-"+command+"-sarama", time.Minute)),
		)
		if errProducer != nil {
			err = fmt.Errorf("unable to create kafka sync producer: %w", errProducer)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		publisherClient = &PublisherClient{
			ReservationDLQ: dlqpublisher.New(producer, cfg.MessageBroker.TopicDLQ, mtc),
		}
		srvOpts = append(srvOpts, services.WithDLQ(publisherClient.ReservationDLQ))
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		staysClient,
		niboClient,
		retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		mtc,
		srvOpts...,
	)

	return &Setup{
		Config:          cfg,
		NewRelic:        newRelic,
		DB:              db,
		Cache:           redisConn,
		RepoSQL:         sqlRepo,
		RepoCache:       cacheRepo,
		Service:         srv,
		PublisherClient: publisherClient,
		Metrics:         mtc,
	}, stopper, nil
}

func setupIDCache(cfg config.Config, redisConn *redis.Client) (cache.Client[string], func(), error) {
	switch cfg.Cache.Driver {
	case CacheDriverRedis:
		if redisConn == nil {
			return nil, nil, errors.New("cache driver redis needs redis.host")
		}
		return cache.NewRedisClient[string](redisConn, cfg.App.Name+":"), func() {}, nil
	case CacheDriverMemory, "":
		c := cache.NewInMemoryClient[string]()
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
