// Package testutil holds fixtures shared by package tests: an App backed by
// a throwaway layout database, data files, and cobra command execution.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/database"
)

// SetupTestApp creates an App over a fresh database in a temp dir. A nil cfg
// uses config.Default(). The App is closed when the test ends.
func SetupTestApp(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()
	_, a := SetupTestAppDB(t, cfg)
	return a
}

// SetupTestAppDB is SetupTestApp that also returns the App's database
func SetupTestAppDB(t *testing.T, cfg *config.Config) (*sql.DB, *app.App) {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "colgrid.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	opts := []app.Option{}
	if cfg != nil {
		opts = append(opts, app.WithConfig(cfg))
	}
	a := app.New(db, opts...)
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db, a
}

// FailLayoutSaves makes every later column order save on db fail with
// "disk full"
func FailLayoutSaves(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `CREATE TRIGGER fail_layout_insert BEFORE INSERT ON grid_layouts
		BEGIN SELECT RAISE(ABORT, 'disk full'); END`)
	if err != nil {
		t.Fatalf("Failed to install failing trigger: %v", err)
	}
}

// WriteFile writes content to name inside a temp dir and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
