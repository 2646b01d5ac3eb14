package database

import (
	"context"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// LayoutReader defines read operations for persisted column orders.
type LayoutReader interface {
	GetLayout(ctx context.Context, grid types.GridName) (*models.Layout, error)
	ListLayouts(ctx context.Context) ([]*models.Layout, error)
}

// LayoutWriter defines write operations for persisted column orders.
type LayoutWriter interface {
	SaveLayout(ctx context.Context, layout *models.Layout) error
	DeleteLayout(ctx context.Context, grid types.GridName) error
}

// DataStore combines all layout operations needed by the service layer.
type DataStore interface {
	LayoutReader
	LayoutWriter
}
