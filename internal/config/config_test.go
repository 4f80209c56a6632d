package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "API_URL", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "VERSION",
	"SESSION_FILE", "REVEAL_STRIP_LENGTH", "REVEAL_WIN_INDEX", "REVEAL_SPIN_MS",
	"REVEAL_BANDS_FILE", "REVEAL_REQUIRE_SERVER_WINNER", "CONTRACTS_FILE",
	"CATALOG_CACHE_SIZE", "CATALOG_CACHE_TTL", "BALANCE_SYNC_INTERVAL",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "BACKEND_TIMEOUT", "TRUSTED_PROXIES", "LOG_DIR",
	"EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH", "WORKER_COUNT", "WORKER_QUEUE_SIZE",
}

// clearEnvVars unsets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
	// t.Setenv with "" still counts as set for LookupEnv; the values below restore defaults
	t.Setenv("PORT", "8080")
	t.Setenv("API_URL", "http://localhost:3001")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("SESSION_FILE", ConfigPathSessionFile)
	t.Setenv("REVEAL_BANDS_FILE", ConfigPathRevealBands)
	t.Setenv("CONTRACTS_FILE", ConfigPathContractRules)
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "http://localhost:3001", cfg.APIURL)
		assert.Equal(t, 120, cfg.StripLength)
		assert.Equal(t, 90, cfg.WinIndex)
		assert.Equal(t, 5*time.Second, cfg.SpinDuration)
		assert.False(t, cfg.RequireServerWinner)
		assert.Equal(t, 256, cfg.CatalogCacheSize)
		assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
		assert.Equal(t, time.Minute, cfg.BalanceSyncInterval)
		assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
		assert.InDelta(t, 10.0, cfg.RateLimitRPS, 0.0001)
		assert.Equal(t, 20, cfg.RateLimitBurst)
		assert.Equal(t, 5, cfg.EventMaxRetries)
		assert.Equal(t, 2*time.Second, cfg.EventRetryDelay)
		assert.Equal(t, 2, cfg.WorkerCount)
		assert.Equal(t, 16, cfg.WorkerQueueSize)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Empty(t, cfg.APIKey)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_URL", "https://cases.example.com/")
		t.Setenv("API_KEY", "secret")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("REVEAL_STRIP_LENGTH", "60")
		t.Setenv("REVEAL_WIN_INDEX", "45")
		t.Setenv("REVEAL_SPIN_MS", "2500")
		t.Setenv("REVEAL_REQUIRE_SERVER_WINNER", "true")
		t.Setenv("CATALOG_CACHE_TTL", "90")
		t.Setenv("BALANCE_SYNC_INTERVAL", "30s")
		t.Setenv("RATE_LIMIT_RPS", "2.5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "https://cases.example.com", cfg.APIURL, "trailing slash is trimmed")
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 60, cfg.StripLength)
		assert.Equal(t, 45, cfg.WinIndex)
		assert.Equal(t, 2500*time.Millisecond, cfg.SpinDuration)
		assert.True(t, cfg.RequireServerWinner)
		assert.Equal(t, 90*time.Second, cfg.CatalogCacheTTL)
		assert.Equal(t, 30*time.Second, cfg.BalanceSyncInterval)
		assert.InDelta(t, 2.5, cfg.RateLimitRPS, 0.0001)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("win index outside strip", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("REVEAL_STRIP_LENGTH", "10")
		t.Setenv("REVEAL_WIN_INDEX", "10")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid reveal strip")
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"go duration", "45s", 45 * time.Second},
		{"plain seconds", "12", 12 * time.Second},
		{"garbage", "soon", 5 * time.Minute},
		{"negative", "-5s", 5 * time.Minute},
		{"empty", "", 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.raw)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnvAsBoolAndInt(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "yes")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true), "unparseable falls back to default")

	t.Setenv("TEST_BOOL_VAR", "false")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_INT_VAR", "-10")
	assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))

	t.Setenv("TEST_INT_VAR", "x")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitList(" 10.0.0.1, ,10.0.0.2 "))
}
