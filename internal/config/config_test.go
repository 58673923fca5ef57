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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, DriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 30, cfg.Booking.WindowDays)
	assert.Equal(t, "Asia/Kolkata", cfg.Booking.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db"
port = 5432
user = "studio"
password = "from-file"
dbname = "studio_booking"

[storage]
driver = "postgres"

[cache]
driver = "redis"
redis_addr = "localhost:6379"

[booking]
window_days = 14
timezone = "UTC"
payment_delay_ms = 1500
payment_failure_rate = 0.1
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 14, cfg.Booking.WindowDays)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, 1500*time.Millisecond, cfg.PaymentDelay())
	assert.Equal(t,
		"host=db port=5432 user=studio password=from-env dbname=studio_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown storage driver", content: "[storage]\ndriver = \"mongo\""},
		{name: "redis without address", content: "[cache]\ndriver = \"redis\""},
		{name: "window too large", content: "[booking]\nwindow_days = 400"},
		{name: "failure rate above one", content: "[booking]\npayment_failure_rate = 1.5"},
		{name: "bad timezone", content: "[booking]\ntimezone = \"Mars/Olympus\""},
		{name: "bad trusted proxy", content: "[rate_limit]\ntrusted_proxies = [\"10.0.0.0/33\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestRateLimitConfig_ProxyPrefixes(t *testing.T) {
	cfg := RateLimitConfig{TrustedProxies: []string{"10.0.0.0/8", " 192.168.1.10 ", "::1"}}

	prefixes, err := cfg.ProxyPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 3)

	assert.Equal(t, "10.0.0.0/8", prefixes[0].String())
	assert.Equal(t, "192.168.1.10/32", prefixes[1].String())
	assert.Equal(t, "::1/128", prefixes[2].String())
}
