package publisher

import (
	"time"

	"github.com/Shopify/sarama"
	saramaMetrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := NewProducerConfig(opts...)

	producer, err := sarama.NewSyncProducer(brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return producer, nil
}

// NewProducerConfig is the sync producer configuration, exposed for tests and mocks.
func NewProducerConfig(opts ...Option) *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return saramaCfg
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		cfg.ClientID = clientID
	}
}

// WithMetricRegistry bridges sarama's internal metrics, see metrics.SaramaRegistry.
func WithMetricRegistry(reg saramaMetrics.Registry) Option {
	return func(cfg *sarama.Config) {
		if reg != nil {
			cfg.MetricRegistry = reg
		}
	}
}
