package columns

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/cli"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupCLITest(t *testing.T, cfg *config.Config) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t, cfg)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "people.csv", content)
}

var execute = testutil.ExecuteCommand

const people = "name,age,city,zip\nAda,36,London,N1\n"

// ============================================================================
// COLUMNS
// ============================================================================

func TestListCmd_JSON(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, ListCmd(), path, "--json")
	require.NoError(t, err)

	var result struct {
		Success bool       `json:"success"`
		Data    ColumnList `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "people", result.Data.Grid)
	require.Len(t, result.Data.Columns, 5)
	assert.True(t, result.Data.Columns[0].Fixed)
	assert.Nil(t, result.Data.Columns[0].Slot)
	require.NotNil(t, result.Data.Columns[1].Slot)
	assert.Equal(t, 0, *result.Data.Columns[1].Slot)
}

func TestListCmd_QuietSkipsHiddenColumns(t *testing.T) {
	cfg := config.Default()
	cfg.Columns = map[string][]models.ColumnDef{"people": {{Name: "age", Visible: models.BoolPtr(false)}}}
	a := setupCLITest(t, cfg)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, ListCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "name\ncity\nzip\n", out)
}

func TestListCmd_Human(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, ListCmd(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "people")
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "city")
}

func TestListCmd_MissingFile(t *testing.T) {
	a := setupCLITest(t, nil)

	_, stderr, err := execute(t, a, ListCmd(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, stderr, "Error:")
}

func TestListCmd_EmptyFile(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, "")

	_, _, err := execute(t, a, ListCmd(), path)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
}

// ============================================================================
// MOVE
// ============================================================================

func TestMoveCmd_PersistsOrder(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, MoveCmd(), path, "0", "2", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "age,city,name,zip\n", out)

	out, _, err = execute(t, a, ListCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "age\ncity\nname\nzip\n", out, "order survives into the next command")
}

func TestMoveCmd_ByColumnID(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, MoveCmd(), path, "zip", "0", "--json")
	require.NoError(t, err)

	var result struct {
		Data MoveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "zip", result.Data.Column)
	assert.Equal(t, 3, result.Data.From)
	assert.True(t, result.Data.Moved)
	assert.Equal(t, []string{"zip", "name", "age", "city"}, result.Data.Order)
}

func TestMoveCmd_SameSlot(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, MoveCmd(), path, "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "already at slot 1")

	layouts, err := a.LayoutService.ListLayouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, layouts, "a no-op move saves nothing")
}

func TestMoveCmd_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Columns = map[string][]models.ColumnDef{
		"people": {
			{Name: "age", EnableColumnMoving: models.BoolPtr(false)},
			{Name: "zip", Visible: models.BoolPtr(false)},
		},
	}
	a := setupCLITest(t, cfg)
	path := writeCSV(t, people)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"slot out of range", []string{"0", "9"}, cli.ExitValidation},
		{"negative slot", []string{"--", "-1", "0"}, cli.ExitValidation},
		{"target not a number", []string{"0", "x"}, cli.ExitUsage},
		{"unknown column", []string{"nope", "0"}, cli.ExitNotFound},
		{"hidden column", []string{"zip", "0"}, cli.ExitValidation},
		{"row header", []string{"#", "0"}, cli.ExitValidation},
		{"locked column", []string{"age", "0"}, cli.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, a, MoveCmd(), append([]string{path}, tt.args...)...)
			assert.Equal(t, tt.code, cli.ExitCode(err), "error: %v", err)
		})
	}

	out, _, err := execute(t, a, ListCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "name\nage\ncity\n", out, "failed moves change nothing")
}

func TestMoveCmd_NegativeSlotWithoutSeparator(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	_, _, err := execute(t, a, MoveCmd(), path, "-1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}

func TestMoveCmd_SaveFailure(t *testing.T) {
	db, a := testutil.SetupTestAppDB(t, nil)
	path := writeCSV(t, people)
	testutil.FailLayoutSaves(t, db)

	out, _, err := execute(t, a, MoveCmd(), path, "0", "2", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PERSIST_ERROR", errObj["code"])
	assert.Contains(t, errObj["message"], "disk full")

	out, _, err = execute(t, a, ListCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "name\nage\ncity\nzip\n", out, "nothing was saved")
}

func TestMoveCmd_JSONError(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	out, _, err := execute(t, a, MoveCmd(), path, "0", "9", "--json")
	require.Error(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_SLOT", errObj["code"])
}

// ============================================================================
// RESET / LAYOUTS
// ============================================================================

func TestResetCmd(t *testing.T) {
	a := setupCLITest(t, nil)
	path := writeCSV(t, people)

	_, _, err := execute(t, a, MoveCmd(), path, "0", "3")
	require.NoError(t, err)

	out, _, err := execute(t, a, LayoutsCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "people\n", out)

	out, _, err = execute(t, a, ResetCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "people\n", out)

	out, _, err = execute(t, a, ListCmd(), path, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "name\nage\ncity\nzip\n", out)

	_, _, err = execute(t, a, ResetCmd(), path)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestLayoutsCmd_Human(t *testing.T) {
	a := setupCLITest(t, nil)

	out, _, err := execute(t, a, LayoutsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No saved layouts")

	path := writeCSV(t, people)
	_, _, err = execute(t, a, MoveCmd(), path, "0", "1", "--grid", "custom")
	require.NoError(t, err)

	out, _, err = execute(t, a, LayoutsCmd())
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "custom"))
	assert.Contains(t, out, "age | name | city | zip")
}
