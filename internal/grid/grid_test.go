package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

func testDefs() []models.ColumnDef {
	return []models.ColumnDef{
		{Name: "name", Width: 12},
		{Name: "title", Width: 20},
		{Name: "age", Width: 5},
	}
}

func TestBuildColumns_ResolvesMovable(t *testing.T) {
	defs := []models.ColumnDef{
		{Name: "a"},
		{Name: "b", EnableColumnMoving: models.BoolPtr(false)},
		{Name: "c", EnableColumnMoving: models.BoolPtr(true)},
	}

	cols := BuildColumns(defs, Options{})
	assert.True(t, cols[0].Movable, "grid default is true")
	assert.False(t, cols[1].Movable)
	assert.True(t, cols[2].Movable)

	cols = BuildColumns(defs, Options{EnableColumnMoving: models.BoolPtr(false)})
	assert.False(t, cols[0].Movable, "grid default explicitly off")
	assert.False(t, cols[1].Movable)
	assert.True(t, cols[2].Movable, "column override wins")
}

func TestBuildColumns_RowHeaderAndVisibility(t *testing.T) {
	defs := []models.ColumnDef{
		{Name: "a"},
		{Name: "b", Visible: models.BoolPtr(false)},
	}

	cols := BuildColumns(defs, Options{RowHeader: true, RowHeaderWidth: 4})
	require.Len(t, cols, 3)
	assert.True(t, cols[0].IsRowHeader)
	assert.False(t, cols[0].Movable)
	assert.Equal(t, 4, cols[0].ResolvedWidth())
	assert.True(t, cols[1].Visible)
	assert.False(t, cols[2].Visible)
}

func TestGrid_RebuildKeepsCommittedOrder(t *testing.T) {
	g, err := New(testDefs(), Options{RowHeader: true})
	require.NoError(t, err)

	require.NoError(t, g.MoveColumn(2, 0))
	assert.Equal(t, []string{"#", "age", "name", "title"}, ids(g.Columns()))

	changed, err := g.Rebuild(testDefs())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"#", "age", "name", "title"}, ids(g.Columns()))
}

func TestGrid_RebuildWithoutCacheUsesDefinitionOrder(t *testing.T) {
	g, err := New(testDefs(), Options{})
	require.NoError(t, err)

	changed, err := g.Rebuild([]models.ColumnDef{{Name: "age"}, {Name: "name"}})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"age", "name"}, ids(g.Columns()))
}

func TestGrid_RebuildRejectsDuplicates(t *testing.T) {
	g, err := New(testDefs(), Options{})
	require.NoError(t, err)

	_, err = g.Rebuild([]models.ColumnDef{{Name: "a"}, {Name: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
	assert.Equal(t, []string{"name", "title", "age"}, ids(g.Columns()), "failed rebuild leaves columns alone")
}

func TestGrid_SetVisibleKeepsOrder(t *testing.T) {
	g, err := New(testDefs(), Options{})
	require.NoError(t, err)
	require.NoError(t, g.MoveColumn(0, 2))

	require.NoError(t, g.SetVisible("title", false))

	assert.Equal(t, []string{"title", "age", "name"}, ids(g.Columns()))
	assert.False(t, g.Columns().At(0).Visible)
	assert.Equal(t, 2, g.Columns().MovableVisibleCount())
}

func TestGrid_SetVisibleUnknownColumn(t *testing.T) {
	g, err := New(testDefs(), Options{})
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetVisible("missing", false), ErrColumnNotFound)
}

func TestGrid_RestoreOrder(t *testing.T) {
	g, err := New(testDefs(), Options{RowHeader: true})
	require.NoError(t, err)

	changed := g.RestoreOrder([]types.ColumnID{"title", "age", "name"})

	assert.True(t, changed)
	assert.Equal(t, []string{"#", "title", "age", "name"}, ids(g.Columns()))
	assert.Equal(t, []types.ColumnID{"title", "age", "name"}, g.Cache().IDs())
}
