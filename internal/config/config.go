// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yufei-ai/distributed-computing/pkg/logger"
)

// Config holds all configuration for the checker.
type Config struct {
	App     AppConfig
	Check   CheckConfig
	Metrics MetricsConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Env      string
	LogLevel string
}

// IsDevelopment returns true if the app is running in development mode.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development" || a.Env == "dev"
}

// IsProduction returns true if the app is running in production mode.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}

// CheckConfig holds assertion-tracker behavior configuration.
type CheckConfig struct {
	// FailFast makes the first failing assertion abort the run.
	FailFast bool
	// PrivateMode marks fail-fast failures as private so their details are
	// withheld from the subject under test.
	PrivateMode bool
}

// MetricsConfig holds the metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the listen address for the /metrics endpoint. Empty disables
	// the endpoint.
	Addr string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.App.Env = getEnvOrDefault("APP_ENV", "development")
	cfg.App.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	if _, err := logger.ParseLevel(cfg.App.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	failFast, err := getEnvAsBool("CHECK_FAIL_FAST", false)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECK_FAIL_FAST: %w", err)
	}
	cfg.Check.FailFast = failFast

	privateMode, err := getEnvAsBool("CHECK_PRIVATE_MODE", false)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECK_PRIVATE_MODE: %w", err)
	}
	cfg.Check.PrivateMode = privateMode

	cfg.Metrics.Addr = getEnvOrDefault("METRICS_ADDR", "")

	return cfg, nil
}

// MetricsEnabled returns true if a metrics listen address is configured.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Addr != ""
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool returns the environment variable as a boolean.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, err
	}
	return value, nil
}
