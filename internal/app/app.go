// Package app wires the TickerLens services together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tickerlens/tickerlens/internal/clients/insight"
	"github.com/tickerlens/tickerlens/internal/common"
)

// App holds the initialized configuration and clients.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Insight     *insight.Client
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, and the insight client.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, TICKERLENS_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("TICKERLENS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "tickerlens.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/tickerlens.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	client := insight.NewClient(
		insight.WithBaseURL(config.Clients.Insight.BaseURL),
		insight.WithLogger(logger),
		insight.WithTimeout(config.Clients.Insight.GetTimeout()),
		insight.WithRateLimit(config.Clients.Insight.RateLimit),
	)

	return &App{
		Config:      config,
		Logger:      logger,
		Insight:     client,
		StartupTime: time.Now(),
	}, nil
}
