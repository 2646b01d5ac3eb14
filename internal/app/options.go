package app

import (
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg    *config.Config
	logger *slog.Logger
}

// WithConfig sets the loaded configuration. Without it defaults are used.
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}
