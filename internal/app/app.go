// Package app wires storage, configuration and services into one container.
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/database"
	"github.com/thenoetrevino/colgrid/internal/services/layout"
)

// App holds all application services and provides dependency injection.
type App struct {
	db     *sql.DB
	repo   database.DataStore
	logger *slog.Logger

	Config        *config.Config
	LayoutService layout.Service
}

// New creates a new App with all services initialized.
func New(db *sql.DB, opts ...Option) *App {
	c := &appConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		db:            db,
		repo:          repo,
		logger:        c.logger,
		Config:        c.cfg,
		LayoutService: layout.NewService(repo, c.logger),
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection
func (a *App) Close() error {
	return a.db.Close()
}
