package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults without file content",
			content: "",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "go-reservation-ledger", cfg.App.Name)
				assert.Equal(t, 8080, cfg.App.HTTPPort)
				assert.Equal(t, 10*time.Second, cfg.App.GracefulTimeout)
				assert.Equal(t, "x-stays-signature", cfg.Webhook.SignatureHeader)
				assert.Equal(t, "https://api.nibo.com.br/empresas/v1", cfg.Nibo.Client.BaseURL)
				assert.Equal(t, 30, cfg.Rules.StaleAfterDays)
				assert.Equal(t, []string{"APTO 327 - BARRA BALI", "API booking.com"}, cfg.Rules.AirbnbExcludedListings)
				assert.Equal(t, "memory", cfg.Cache.Driver)
				assert.False(t, cfg.Audit.Enabled)
			},
		},
		{
			name: "values from file",
			content: `
app:
  env: prod
  http_port: 9000
  graceful_timeout: 3s
webhook:
  secret: s3cr3t
nibo:
  account_id: acc-1
  client:
    secret_key: token
    timeout: 5s
rules:
  stale_after_days: 45
  categories:
    owner_fee: cat-owner
message_broker:
  brokers:
    - localhost:9092
  topic_dlq: reservation.dlq
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, PROD_ENV, StringToEnvironment(cfg.App.Env))
				assert.Equal(t, 9000, cfg.App.HTTPPort)
				assert.Equal(t, 3*time.Second, cfg.App.GracefulTimeout)
				assert.Equal(t, "s3cr3t", cfg.Webhook.Secret)
				assert.Equal(t, "acc-1", cfg.Nibo.AccountID)
				assert.Equal(t, "token", cfg.Nibo.Client.SecretKey)
				assert.Equal(t, 5*time.Second, cfg.Nibo.Client.Timeout)
				assert.Equal(t, 45, cfg.Rules.StaleAfterDays)
				assert.Equal(t, "cat-owner", cfg.Rules.Categories.OwnerFee)
				assert.Equal(t, []string{"localhost:9092"}, cfg.MessageBroker.Brokers)
				assert.Equal(t, "reservation.dlq", cfg.MessageBroker.TopicDLQ)
			},
		},
		{
			name:    "environment overrides file",
			content: "webhook:\n  secret: from-file\n",
			env: map[string]string{
				"GO_RESERVATION_LEDGER_WEBHOOK_SECRET": "from-env",
				"GO_RESERVATION_LEDGER_AUDIT_ENABLED":  "true",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "from-env", cfg.Webhook.Secret)
				assert.True(t, cfg.Audit.Enabled)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(WithConfigFile(writeConfig(t, tt.content)))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_missingExplicitFile(t *testing.T) {
	_, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestStringToEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"local", LOCAL_ENV},
		{"DEV", DEV_ENV},
		{" uat ", UAT_ENV},
		{"production", PROD_ENV},
		{"whatever", UNDEFINED_ENV},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringToEnvironment(tt.in))
		})
	}
}

func TestEnvironment_String(t *testing.T) {
	assert.Equal(t, "prod", StringToEnvironment("production").String())
	assert.Equal(t, "uat", StringToEnvironment("staging").String())
	assert.Equal(t, "undefined", UNDEFINED_ENV.String())

	assert.False(t, PROD_ENV.DebugAllowed())
	assert.True(t, LOCAL_ENV.DebugAllowed())
	assert.True(t, UNDEFINED_ENV.DebugAllowed())
}
