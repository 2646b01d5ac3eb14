// Package cli holds the plumbing shared by colgrid's commands: the
// application context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app came from the command context and its
	// lifecycle belongs to the caller
	owned bool
}

// NewCLI loads the configuration and opens the layout database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
