package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gridguard/landing/internal/config"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/logger"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `gridguard init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.NewLogger(level, string(cfg.Log.Format))
}

// loadStore loads the content registry named by the config, or the built-in
// one when no content file is set.
func loadStore(cfg *config.Config) (*content.Store, error) {
	store, err := content.NewStore(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return store, nil
}
