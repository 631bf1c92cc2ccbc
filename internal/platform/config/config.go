package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at process start. UseMock in particular must not
// change mid-session; everything downstream captures it at construction.
type Config struct {
	UseMock            bool
	APIBaseURL         string
	SessionFile        string
	MockLatency        time.Duration
	RequestTimeout     time.Duration
	Addr               string
	JWTSecret          string
	DevAdminPassword   string
	DevPMPassword      string
	RateLimitPerMinute int
	MetricsEnabled     bool
}

func Load() Config {
	return Config{
		UseMock:            getEnvBool("FF_USE_MOCK", true),
		APIBaseURL:         getEnv("FF_API_BASE_URL", ""),
		SessionFile:        getEnv("FF_SESSION_FILE", ".fieldforce/session.json"),
		MockLatency:        getEnvDuration("FF_MOCK_LATENCY", 200*time.Millisecond),
		RequestTimeout:     getEnvDuration("FF_REQUEST_TIMEOUT", 15*time.Second),
		Addr:               getEnv("FF_ADDR", ":8080"),
		JWTSecret:          getEnv("FF_JWT_SECRET", ""),
		DevAdminPassword:   getEnv("FF_DEV_ADMIN_PASSWORD", "admin-dev-pass"),
		DevPMPassword:      getEnv("FF_DEV_PM_PASSWORD", "pm-dev-pass"),
		RateLimitPerMinute: getEnvInt("FF_RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("FF_METRICS_ENABLED", true),
	}
}

func (c Config) Validate() error {
	if !c.UseMock && strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("FF_API_BASE_URL is required when FF_USE_MOCK is false")
	}
	if strings.TrimSpace(c.SessionFile) == "" {
		return fmt.Errorf("FF_SESSION_FILE must not be empty")
	}
	if c.MockLatency < 0 {
		return fmt.Errorf("FF_MOCK_LATENCY must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("FF_REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("FF_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
