package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the layout schema. Every statement is idempotent.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		// One row per grid that has ever had its order saved
		`CREATE TABLE IF NOT EXISTS grids (
			name TEXT PRIMARY KEY,
			source TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		// The persisted order cache: data column ids by position
		`CREATE TABLE IF NOT EXISTS grid_layouts (
			grid_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			column_id TEXT NOT NULL,
			PRIMARY KEY (grid_name, position),
			UNIQUE (grid_name, column_id),
			FOREIGN KEY (grid_name) REFERENCES grids(name) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_grid_layouts_grid
		ON grid_layouts(grid_name, position)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
