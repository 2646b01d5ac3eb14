// Package layout persists grid column orders and connects a live grid to its
// stored order.
package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/database"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// Service defines all layout-related business operations
type Service interface {
	// Read operations
	GetOrder(ctx context.Context, name types.GridName) ([]types.ColumnID, error)
	ListLayouts(ctx context.Context) ([]*models.Layout, error)

	// Write operations
	SaveOrder(ctx context.Context, req SaveOrderRequest) error
	Reset(ctx context.Context, name types.GridName) error

	// Attach restores the stored order of name onto g and persists every
	// later committed move. Reports whether a stored order was applied.
	Attach(ctx context.Context, name types.GridName, source string, g *grid.Grid, opts ...AttachOption) (bool, error)
}

// AttachOption configures Attach
type AttachOption func(*attachConfig)

type attachConfig struct {
	onSaveError func(error)
}

// WithSaveErrorHandler calls fn with every error from saving a moved order
func WithSaveErrorHandler(fn func(error)) AttachOption {
	return func(c *attachConfig) {
		c.onSaveError = fn
	}
}

// SaveOrderRequest encapsulates data for saving a column order
type SaveOrderRequest struct {
	GridName  types.GridName
	Source    string
	ColumnIDs []types.ColumnID
}

// service implements Service on top of the layout repository
type service struct {
	store  database.DataStore
	logger *slog.Logger
}

// NewService creates a new layout service. A nil logger means slog.Default().
func NewService(store database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: store, logger: logger}
}

// GetOrder returns the stored data column order of a grid
func (s *service) GetOrder(ctx context.Context, name types.GridName) ([]types.ColumnID, error) {
	if name == "" {
		return nil, ErrEmptyGridName
	}
	l, err := s.store.GetLayout(ctx, name)
	if errors.Is(err, models.ErrLayoutNotFound) {
		return nil, fmt.Errorf("%q: %w", name, ErrLayoutNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l.ColumnIDs, nil
}

// ListLayouts returns every stored layout
func (s *service) ListLayouts(ctx context.Context) ([]*models.Layout, error) {
	return s.store.ListLayouts(ctx)
}

// SaveOrder validates and stores a column order, replacing any previous one
func (s *service) SaveOrder(ctx context.Context, req SaveOrderRequest) error {
	if err := validateSaveOrder(req); err != nil {
		return err
	}
	return s.store.SaveLayout(ctx, &models.Layout{
		GridName:  req.GridName,
		Source:    req.Source,
		ColumnIDs: req.ColumnIDs,
	})
}

// Reset forgets the stored order of a grid
func (s *service) Reset(ctx context.Context, name types.GridName) error {
	if name == "" {
		return ErrEmptyGridName
	}
	err := s.store.DeleteLayout(ctx, name)
	if errors.Is(err, models.ErrLayoutNotFound) {
		return fmt.Errorf("%q: %w", name, ErrLayoutNotFound)
	}
	return err
}

func (s *service) Attach(ctx context.Context, name types.GridName, source string, g *grid.Grid, opts ...AttachOption) (bool, error) {
	if name == "" {
		return false, ErrEmptyGridName
	}
	c := &attachConfig{}
	for _, opt := range opts {
		opt(c)
	}

	restored := false
	ids, err := s.GetOrder(ctx, name)
	switch {
	case errors.Is(err, ErrLayoutNotFound):
		s.logger.Debug("no saved layout", "grid", name)
	case err != nil:
		return false, err
	default:
		restored = g.RestoreOrder(ids)
		s.logger.Info("restored column order", "grid", name, "columns", len(ids), "changed", restored)
	}

	g.Reorderer().OnColumnPositionChanged(func(change grid.PositionChange) {
		req := SaveOrderRequest{GridName: name, Source: source, ColumnIDs: g.Cache().IDs()}
		if err := s.SaveOrder(ctx, req); err != nil {
			s.logger.Error("failed to persist column order", "grid", name, "column", change.ColumnID, "error", err)
			if c.onSaveError != nil {
				c.onSaveError(fmt.Errorf("saving order of %q: %w", name, err))
			}
			return
		}
		s.logger.Debug("persisted column order", "grid", name, "column", change.ColumnID,
			"from", change.OriginalPosition, "to", change.NewPosition)
	})
	return restored, nil
}

func validateSaveOrder(req SaveOrderRequest) error {
	if req.GridName == "" {
		return ErrEmptyGridName
	}
	seen := make(map[types.ColumnID]struct{}, len(req.ColumnIDs))
	for _, id := range req.ColumnIDs {
		if id == "" {
			return ErrEmptyColumnID
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%q: %w", id, ErrDuplicateColumnID)
		}
		seen[id] = struct{}{}
	}
	return nil
}
