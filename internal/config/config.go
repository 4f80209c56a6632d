package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	LogDir      string // optional; also tee logs to session files here

	// Backend
	APIURL         string
	BackendTimeout time.Duration

	// Gateway
	APIKey         string // optional key guarding the gateway API
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string

	// Session mirror
	SessionFile         string
	BalanceSyncInterval time.Duration

	// Reveal
	StripLength         int
	WinIndex            int
	SpinDuration        time.Duration
	BandsFile           string
	RequireServerWinner bool

	ContractsFile string

	// Catalog cache
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	// Event system
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Background work
	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		APIURL:         strings.TrimRight(getEnv("API_URL", "http://localhost:3001"), "/"),
		BackendTimeout: getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),

		APIKey:         getEnv("API_KEY", ""),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		SessionFile:         getEnv("SESSION_FILE", ConfigPathSessionFile),
		BalanceSyncInterval: getEnvAsDuration("BALANCE_SYNC_INTERVAL", time.Minute),

		StripLength:         getEnvAsInt("REVEAL_STRIP_LENGTH", 120),
		WinIndex:            getEnvAsInt("REVEAL_WIN_INDEX", 90),
		SpinDuration:        time.Duration(getEnvAsInt("REVEAL_SPIN_MS", 5000)) * time.Millisecond,
		BandsFile:           getEnv("REVEAL_BANDS_FILE", ConfigPathRevealBands),
		RequireServerWinner: getEnvAsBool("REVEAL_REQUIRE_SERVER_WINNER", false),

		ContractsFile: getEnv("CONTRACTS_FILE", ConfigPathContractRules),

		CatalogCacheSize: getEnvAsInt("CATALOG_CACHE_SIZE", 256),
		CatalogCacheTTL:  getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ConfigPathDeadLetter),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", 2),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", 16),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API_URL must not be empty")
	}
	if cfg.StripLength <= 0 || cfg.WinIndex < 0 || cfg.WinIndex >= cfg.StripLength {
		return nil, fmt.Errorf("invalid reveal strip: length=%d win_index=%d", cfg.StripLength, cfg.WinIndex)
	}
	if cfg.SpinDuration <= 0 {
		return nil, fmt.Errorf("REVEAL_SPIN_MS must be positive")
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the gateway runs in a production environment
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// splitList parses a comma separated env value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration accepts Go durations ("30s") or plain seconds ("30")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
