// Package launcher runs the interactive grid viewer
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/database"
	"github.com/thenoetrevino/colgrid/internal/tui/core"
)

// Launch opens req in the TUI and blocks until the user quits. The last
// column order is saved before it returns.
func Launch(ctx context.Context, req app.OpenRequest) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	tuiApp, err := core.New(ctx, application, req)
	if err != nil {
		return err
	}
	// Runs after a signal too, when the model never saw its quit key
	defer tuiApp.Close()

	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("viewer closed", "grid", tuiApp.GetModel().Workspace().Name)
	return nil
}
