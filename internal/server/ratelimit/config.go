package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules:           DefaultRules(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-endpoint limits. Optimization runs are the
// expensive operation, so they get the strictest limit.
func DefaultRules() []Rule {
	return []Rule{
		{PathPrefix: "/resumes/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{PathPrefix: "/resumes", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{PathPrefix: "/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
