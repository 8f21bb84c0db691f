package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "GO_RESERVATION_LEDGER"

type loaderOptions struct {
	configFile  string
	searchPaths []string
}

type LoaderOption func(*loaderOptions)

// WithConfigFile loads exactly this file instead of searching for config.yaml.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) {
		o.configFile = path
	}
}

func WithSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) {
		o.searchPaths = append(o.searchPaths, paths...)
	}
}

var defaults = map[string]any{
	"app.env":              "local",
	"app.http_port":        8080,
	"app.http_timeout":     30 * time.Second,
	"app.graceful_timeout": 10 * time.Second,
	"app.name":             "go-reservation-ledger",
	"app.log_level":        "",

	"postgres.db_host":              "",
	"postgres.db_port":              "5432",
	"postgres.db_user":              "",
	"postgres.db_pass":              "",
	"postgres.db_name":              "",
	"postgres.db_schema":            "public",
	"postgres.max_open_connections": 0,
	"postgres.max_idle_connections": 0,
	"postgres.conn_max_lifetime":    0,

	"redis.host":     "",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"cache.driver": "memory",
	"cache.ttl":    time.Hour,

	"secret_key":            "",
	"new_relic_license_key": "",

	"webhook.secret":           "",
	"webhook.signature_header": "x-stays-signature",
	"webhook.client_id":        "",
	"webhook.client_id_header": "x-stays-client-id",

	"stays.base_url":        "https://adsa.stays.com.br/external/v1",
	"stays.username":        "",
	"stays.secret_key":      "",
	"stays.retry_count":     0,
	"stays.retry_wait_time": 500,
	"stays.timeout":         30 * time.Second,

	"nibo.client.base_url":        "https://api.nibo.com.br/empresas/v1",
	"nibo.client.username":        "",
	"nibo.client.secret_key":      "",
	"nibo.client.retry_count":     0,
	"nibo.client.retry_wait_time": 500,
	"nibo.client.timeout":         30 * time.Second,
	"nibo.account_id":             "",

	"rules.categories.company_commission": "",
	"rules.categories.cleaning_fee":       "",
	"rules.categories.buy_price":          "",
	"rules.categories.electricity_fee":    "",
	"rules.categories.iss":                "",
	"rules.categories.booking_advance":    "",
	"rules.categories.service_charge":     "",
	"rules.categories.owner_fee":          "",
	"rules.categories.booking_commission": "",
	"rules.airbnb_excluded_listings":      []string{"APTO 327 - BARRA BALI", "API booking.com"},
	"rules.commission_counterparty":       "BOOKING.COM BRASIL SERVICOS DE RESERVA DE HOTEIS LTDA.",
	"rules.stale_after_days":              30,

	"audit.enabled": false,

	"message_broker.brokers":   []string{},
	"message_broker.topic_dlq": "",

	"exponential_backoff.max_retries":        3,
	"exponential_backoff.max_backoff_time":   10 * time.Second,
	"exponential_backoff.backoff_multiplier": 2.0,
}

// Load reads config.yaml (or the file given by WithConfigFile) and overlays environment
// variables prefixed with GO_RESERVATION_LEDGER, e.g. GO_RESERVATION_LEDGER_WEBHOOK_SECRET.
// A missing config file is not an error; every key has a default.
func Load(opts ...LoaderOption) (cfg Config, err error) {
	o := &loaderOptions{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range append(o.searchPaths, "/config", ".", "./config") {
			v.AddConfigPath(p)
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	err = v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}
