package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "Failed to create test database")

	// A second pooled connection would see a different in-memory database
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, configure(ctx, db))
	require.NoError(t, runMigrations(ctx, db))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile opens a file-based database through InitDB for tests that
// reopen the same file
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "colgrid.db")
	db, err := InitDB(context.Background(), path)
	require.NoError(t, err)
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

func ids(names ...string) []types.ColumnID {
	out := make([]types.ColumnID, len(names))
	for i, n := range names {
		out[i] = types.ColumnID(n)
	}
	return out
}

func saveLayout(t *testing.T, repo *Repository, grid string, columns ...string) {
	t.Helper()
	err := repo.SaveLayout(context.Background(), &models.Layout{
		GridName:  types.GridName(grid),
		Source:    grid + ".csv",
		ColumnIDs: ids(columns...),
	})
	require.NoError(t, err)
}
