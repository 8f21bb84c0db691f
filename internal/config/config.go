package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Database `json:"postgres"`
		Redis              Redis    `json:"redis"`
		Cache              Cache    `json:"cache"`
		SecretKey          string   `json:"secret_key"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		Webhook            Webhook                  `json:"webhook"`
		Stays              HTTPConfiguration        `json:"stays"`
		Nibo               Nibo                     `json:"nibo"`
		Rules              Rules                    `json:"rules"`
		Audit              Audit                    `json:"audit"`
		MessageBroker      MessageBroker            `json:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogLevel        string        `json:"log_level"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// Cache selects where resolved ledger ids (stakeholders, suppliers, cost centers) are kept.
	// Driver is either "memory" or "redis".
	Cache struct {
		Driver string        `json:"driver"`
		TTL    time.Duration `json:"ttl"`
	}

	// Webhook holds the shared secret the reservation platform sends on every webhook call.
	// ClientID is optional; when set the client id header must match it too.
	Webhook struct {
		Secret          string `json:"secret"`
		SignatureHeader string `json:"signature_header"`
		ClientID        string `json:"client_id"`
		ClientIDHeader  string `json:"client_id_header"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url"`
		Username      string        `json:"username"`
		SecretKey     string        `json:"secret_key"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	Nibo struct {
		Client    HTTPConfiguration `json:"client"`
		AccountID string            `json:"account_id"`
	}

	Rules struct {
		Categories             CategoryIDs `json:"categories"`
		AirbnbExcludedListings []string    `json:"airbnb_excluded_listings"`
		CommissionCounterparty string      `json:"commission_counterparty"`
		StaleAfterDays         int         `json:"stale_after_days"`
	}

	// CategoryIDs maps every financial category the rules emit to its ledger category id.
	CategoryIDs struct {
		CompanyCommission string `json:"company_commission"`
		CleaningFee       string `json:"cleaning_fee"`
		BuyPrice          string `json:"buy_price"`
		ElectricityFee    string `json:"electricity_fee"`
		ISS               string `json:"iss"`
		BookingAdvance    string `json:"booking_advance"`
		ServiceCharge     string `json:"service_charge"`
		OwnerFee          string `json:"owner_fee"`
		BookingCommission string `json:"booking_commission"`
	}

	Audit struct {
		Enabled bool `json:"enabled"`
	}

	MessageBroker struct {
		Brokers  []string `json:"brokers"`
		TopicDLQ string   `json:"topic_dlq"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}
)
