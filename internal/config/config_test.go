package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to $XDG_CONFIG_HOME/colgrid/config.yaml under a temp dir
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	if content == "" {
		return tempDir
	}
	configDir := filepath.Join(tempDir, "colgrid")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
	return tempDir
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "H", defaults.MoveColumnLeft)
	assert.Equal(t, "L", defaults.MoveColumnRight)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	writeConfig(t, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultGridConfig(), cfg.Grid)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)

	opts := cfg.Grid.Options()
	assert.True(t, opts.RowHeader, "row header shown unless disabled")
	assert.True(t, opts.MovingEnabled(), "moving enabled unless disabled")
}

func TestLoadConfigWithFile(t *testing.T) {
	writeConfig(t, `grid:
  enable_column_moving: false
  rtl: true
  row_header: false
  max_column_width: 12
columns:
  people:
    - name: age
      width: 6
      enable_column_moving: true
key_mappings:
  quit: "x"
  move_column_left: "<"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "<", cfg.KeyMappings.MoveColumnLeft)
	assert.Equal(t, "L", cfg.KeyMappings.MoveColumnRight, "unspecified keys use defaults")

	opts := cfg.Grid.Options()
	assert.False(t, opts.MovingEnabled())
	assert.True(t, opts.RTL)
	assert.False(t, opts.RowHeader)
	assert.Equal(t, 12, cfg.Grid.LoadOptions().MaxColumnWidth)
	assert.Equal(t, DefaultGridConfig().EdgeScrollMultiplier, cfg.Grid.EdgeScrollMultiplier)

	overrides := cfg.ColumnOverrides("people")
	require.Len(t, overrides, 1)
	assert.Equal(t, 6, overrides[0].Width)
	require.NotNil(t, overrides[0].EnableColumnMoving)
	assert.True(t, opts.ResolveMovable(&overrides[0]), "column setting beats the grid default")
	assert.Empty(t, cfg.ColumnOverrides("other"))
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	writeConfig(t, "grid: [not, a, map")

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	tempDir := writeConfig(t, "")

	cfg := &Config{KeyMappings: KeyMappings{Quit: "x"}}
	cfg.applyDefaults()
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(tempDir, "colgrid", "config.yaml"))
	require.NoError(t, err)

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", cfg2.KeyMappings.Quit)
	assert.Equal(t, cfg.Grid, cfg2.Grid)
}

func TestPath(t *testing.T) {
	tempDir := writeConfig(t, "")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "colgrid", "config.yaml"), path)
}
