package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "APP_ENV", "SERVICE_NAME", "CURRENCY", "STORE_DRIVER", "DYNAMODB_TABLE_PREFIX",
	"MONGODB_URI", "MONGODB_DATABASE", "MONGODB_USER", "MONGODB_PASSWORD", "FIRESTORE_PROJECT_ID",
	"LOG_LEVEL", "METRICS_ENABLED", "METRICS_PATH", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "AUD", cfg.Pricing.Currency)
	assert.Equal(t, DriverDynamoDB, cfg.Store.Driver)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9090
env = "staging"

[store]
driver = "mongodb"
mongodb_database = "cleaning"

[pricing]
currency = "NZD"
`), 0o600))

	t.Setenv("CURRENCY", "USD")
	t.Setenv("READ_TIMEOUT", "3s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Server.Env)
	assert.Equal(t, DriverMongoDB, cfg.Store.Driver)
	assert.Equal(t, "cleaning", cfg.Store.MongoDatabase)
	assert.Equal(t, "USD", cfg.Pricing.Currency)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":            "eighty",
		"STORE_DRIVER":    "postgres",
		"METRICS_ENABLED": "maybe",
		"WRITE_TIMEOUT":   "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate_EmptyCurrency(t *testing.T) {
	cfg := Default()
	cfg.Pricing.Currency = "  "
	assert.Error(t, cfg.Validate())
}

func TestValidate_MetricsPath(t *testing.T) {
	for _, path := range []string{"", "metrics", "/", "/health", "/api/metrics", "/quotes/stats", "/swagger", "/:id", "/stats/*any"} {
		t.Run(path, func(t *testing.T) {
			cfg := Default()
			cfg.Metrics.Path = path
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Metrics.Path = "/internal/metrics"
	assert.NoError(t, cfg.Validate())

	cfg.Metrics.Enabled = false
	cfg.Metrics.Path = ""
	assert.NoError(t, cfg.Validate())
}
