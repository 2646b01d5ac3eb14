package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/testutil"
)

func runInitCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := InitCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String() + errOut.String(), err
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "colgrid", "config.yaml")

	out, err := runInitCmd(t, "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, path, result["data"].(map[string]any)["path"])

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGridConfig(), cfg.Grid)
	assert.Equal(t, config.DefaultKeyMappings().Quit, cfg.KeyMappings.Quit)
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "colgrid", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: x\n"), 0o644))

	out, err := runInitCmd(t, "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, out, "CONFIG_EXISTS")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quit: x")

	_, err = runInitCmd(t, "--force", "--quiet")
	require.NoError(t, err)
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKeyMappings().Quit, cfg.KeyMappings.Quit)
}
