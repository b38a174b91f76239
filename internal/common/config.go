// Package common provides shared utilities for TickerLens
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for TickerLens
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Clients     ClientsConfig   `toml:"clients"`
	Dashboard   DashboardConfig `toml:"dashboard"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Insight InsightConfig `toml:"insight"`
}

// InsightConfig holds the upstream analysis engine configuration
type InsightConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *InsightConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// DashboardConfig holds presentation settings for the rendered dashboard.
type DashboardConfig struct {
	DefaultNewsCount int `toml:"default_news_count"` // articles requested when the form leaves the field blank
	ErrorDisplayMS   int `toml:"error_display_ms"`   // how long the host page shows transient errors
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Clients: ClientsConfig{
			Insight: InsightConfig{
				BaseURL:   "http://localhost:5000",
				RateLimit: 5,
				Timeout:   "120s",
			},
		},
		Dashboard: DashboardConfig{
			DefaultNewsCount: 5,
			ErrorDisplayMS:   5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TICKERLENS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("TICKERLENS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("TICKERLENS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("TICKERLENS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("TICKERLENS_INSIGHT_URL"); url != "" {
		config.Clients.Insight.BaseURL = url
	}

	if timeout := os.Getenv("TICKERLENS_INSIGHT_TIMEOUT"); timeout != "" {
		config.Clients.Insight.Timeout = timeout
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
