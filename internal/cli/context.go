package cli

import (
	"context"

	"github.com/thenoetrevino/colgrid/internal/app"
)

type contextKey string

const appKey contextKey = "colgrid.app"

// WithApp stores an already built application in ctx. Commands run with such
// a context use it instead of opening the user's database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the app stored with WithApp, or a new
// one backed by the user's config and database
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
