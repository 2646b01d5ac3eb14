package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

func names(defs []models.ColumnDef) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}

// ============================================================================
// READ
// ============================================================================

func TestRead_CommaSeparated(t *testing.T) {
	ds, err := Read(strings.NewReader("name,age,city\nAda,36,London\nAlan,41,Wilmslow\n"), "people", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, types.GridName("people"), ds.Name)
	assert.Equal(t, []string{"name", "age", "city"}, names(ds.Columns))
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "Wilmslow", ds.Cell(1, "city"))
	assert.Equal(t, "", ds.Cell(5, "city"))
	assert.Equal(t, "", ds.Cell(0, "nope"))
}

func TestRead_DetectsTabs(t *testing.T) {
	ds, err := Read(strings.NewReader("a\tb,c\td\n1\t2,3\t4\n"), "t", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b,c", "d"}, names(ds.Columns))
	assert.Equal(t, "2,3", ds.Cell(0, "b,c"))
}

func TestRead_TieFallsBackToComma(t *testing.T) {
	ds, err := Read(strings.NewReader("a\tb,c\n1\t2,3\n"), "t", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a\tb", "c"}, names(ds.Columns))
}

func TestRead_ExplicitDelimiter(t *testing.T) {
	ds, err := Read(strings.NewReader("a;b\n1;2\n"), "t", LoadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(ds.Columns))
}

func TestRead_RaggedRowsArePadded(t *testing.T) {
	ds, err := Read(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), "t", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "", ""}, ds.Rows[0])
	assert.Len(t, ds.Rows[1], 3)
}

func TestRead_HeaderNamesAreUnique(t *testing.T) {
	ds, err := Read(strings.NewReader("a,,a,a\n"), "t", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "col2", "a_2", "a_3"}, names(ds.Columns))
	assert.Equal(t, "a", ds.Columns[2].Title(), "suffixed columns keep their header text")
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""), "t", LoadOptions{})
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestRead_MeasuresWidths(t *testing.T) {
	long := strings.Repeat("x", 100)
	ds, err := Read(strings.NewReader("id,name,note\n1,日本語,"+long+"\n"), "t", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, DefaultMinColumnWidth, ds.Columns[0].Width, "clamped up to the minimum")
	assert.Equal(t, 8, ds.Columns[1].Width, "wide runes count double plus padding")
	assert.Equal(t, DefaultMaxColumnWidth, ds.Columns[2].Width, "clamped down to the maximum")
}

// ============================================================================
// LOAD
// ============================================================================

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\nAda\n"), 0o644))

	ds, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.GridName("people"), ds.Name)
	assert.Equal(t, path, ds.Source)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), LoadOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGridNameFor(t *testing.T) {
	assert.Equal(t, types.GridName("people"), GridNameFor("/data/people.csv"))
	assert.Equal(t, types.GridName("archive.tar"), GridNameFor("archive.tar.gz"))
}

// ============================================================================
// OVERRIDES
// ============================================================================

func TestApplyOverrides(t *testing.T) {
	ds, err := Read(strings.NewReader("a,b,c\n"), "t", LoadOptions{})
	require.NoError(t, err)

	err = ds.ApplyOverrides([]models.ColumnDef{
		{Name: "a", DisplayName: "Alpha", Width: 20},
		{Name: "b", Visible: models.BoolPtr(false), EnableColumnMoving: models.BoolPtr(false)},
		{Name: "zzz", Width: 3},
	})
	assert.ErrorIs(t, err, ErrUnknownOverride)

	assert.Equal(t, "Alpha", ds.Columns[0].Title())
	assert.Equal(t, 20, ds.Columns[0].Width)
	require.NotNil(t, ds.Columns[1].Visible)
	assert.False(t, *ds.Columns[1].Visible)
	assert.False(t, *ds.Columns[1].EnableColumnMoving)
	assert.Nil(t, ds.Columns[2].Visible, "untouched columns keep their defaults")
}

// ============================================================================
// WIDTH
// ============================================================================

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abcd…", Fit("abcdefgh", 5))
	assert.Equal(t, "a b", Fit("a\nb", 3))
	assert.Equal(t, "", Fit("abc", 0))
	assert.Equal(t, 5, DisplayWidth(Fit("日本語", 5)))
}

func TestCut(t *testing.T) {
	assert.Equal(t, "bcd", Cut("abcdef", 1, 4))
	assert.Equal(t, "b   ", Cut("ab", 1, 5), "padded past the end")
	assert.Equal(t, "日", Cut("日本", 0, 2))
	assert.Equal(t, "  ", Cut("日本", 1, 3), "split wide runes become spaces")
	assert.Equal(t, "", Cut("abc", 2, 2))
}
