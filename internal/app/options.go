package app

import (
	"log/slog"

	"github.com/thenoetrevino/roster/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	repo   database.DataStore
	logger *slog.Logger
}

// WithDataStore replaces the repository built from the connection
func WithDataStore(repo database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
