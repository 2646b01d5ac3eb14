package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// LayoutRepo handles all layout-related database operations.
type LayoutRepo struct {
	db *sql.DB
}

// SaveLayout replaces the stored order of layout.GridName in one transaction
func (r *LayoutRepo) SaveLayout(ctx context.Context, layout *models.Layout) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO grids (name, source, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET source = excluded.source, updated_at = CURRENT_TIMESTAMP`,
			string(layout.GridName), layout.Source)
		if err != nil {
			return fmt.Errorf("upserting grid %q: %w", layout.GridName, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM grid_layouts WHERE grid_name = ?`, string(layout.GridName)); err != nil {
			return fmt.Errorf("clearing layout of %q: %w", layout.GridName, err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO grid_layouts (grid_name, position, column_id) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for pos, id := range layout.ColumnIDs {
			if _, err := stmt.ExecContext(ctx, string(layout.GridName), pos, string(id)); err != nil {
				return fmt.Errorf("inserting column %q at %d: %w", id, pos, err)
			}
		}
		return nil
	})
}

// GetLayout loads the stored order of grid, ordered by position.
// Returns models.ErrLayoutNotFound when the grid was never saved.
func (r *LayoutRepo) GetLayout(ctx context.Context, grid types.GridName) (*models.Layout, error) {
	layout := &models.Layout{GridName: grid}
	err := r.db.QueryRowContext(ctx,
		`SELECT source, updated_at FROM grids WHERE name = ?`, string(grid),
	).Scan(&layout.Source, &layout.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLayoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying grid %q: %w", grid, err)
	}

	ids, err := r.columnIDs(ctx, grid)
	if err != nil {
		return nil, err
	}
	layout.ColumnIDs = ids
	return layout, nil
}

// ListLayouts returns every stored layout, most recently updated first
func (r *LayoutRepo) ListLayouts(ctx context.Context) ([]*models.Layout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, source, updated_at FROM grids ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("querying grids: %w", err)
	}
	defer rows.Close()

	var layouts []*models.Layout
	for rows.Next() {
		var name string
		l := &models.Layout{}
		if err := rows.Scan(&name, &l.Source, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.GridName = types.GridName(name)
		layouts = append(layouts, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Loaded after the cursor is closed: the pool holds a single connection
	rows.Close()
	for _, l := range layouts {
		if l.ColumnIDs, err = r.columnIDs(ctx, l.GridName); err != nil {
			return nil, err
		}
	}
	return layouts, nil
}

// DeleteLayout removes the stored order of grid. Deleting an unknown grid
// returns models.ErrLayoutNotFound.
func (r *LayoutRepo) DeleteLayout(ctx context.Context, grid types.GridName) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grids WHERE name = ?`, string(grid))
	if err != nil {
		return fmt.Errorf("deleting grid %q: %w", grid, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrLayoutNotFound
	}
	return nil
}

func (r *LayoutRepo) columnIDs(ctx context.Context, grid types.GridName) ([]types.ColumnID, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT column_id FROM grid_layouts WHERE grid_name = ? ORDER BY position`, string(grid))
	if err != nil {
		return nil, fmt.Errorf("querying layout of %q: %w", grid, err)
	}
	defer rows.Close()

	var ids []types.ColumnID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, types.ColumnID(id))
	}
	return ids, rows.Err()
}
