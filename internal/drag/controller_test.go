package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/models"
)

func (f *fixture) controller() *Controller {
	return NewController(f.grid.Columns(), f.grid.Reorderer(), f.env, Options{RTL: f.grid.Options().RTL})
}

func TestController_BindsOnlyMovableDataColumns(t *testing.T) {
	f := newFixture(t, 100, grid.Options{RowHeader: true},
		models.ColumnDef{Name: "a", Width: 10},
		models.ColumnDef{Name: "b", Width: 10, EnableColumnMoving: models.BoolPtr(false)},
		models.ColumnDef{Name: "c", Width: 10, Visible: models.BoolPtr(false)},
	)
	c := f.controller()

	assert.True(t, c.Bound("a"))
	assert.False(t, c.Bound("b"), "not movable")
	assert.False(t, c.Bound("c"), "hidden")
	assert.False(t, c.Bound(models.RowHeaderID), "fixed")
	assert.False(t, c.PointerDown("b", 10))
}

func TestController_OneDragAtATime(t *testing.T) {
	f := newFixture(t, 100, grid.Options{}, defs("a", "b", "c")...)
	c := f.controller()

	require.True(t, c.PointerDown("a", 5))
	assert.False(t, c.Bound("b"), "down listeners are closed while a drag is open")
	assert.False(t, c.PointerDown("b", 15))
	assert.Equal(t, "a", string(c.Active().ColumnID()))

	phase, err := c.PointerUp(5)
	require.NoError(t, err)
	assert.Equal(t, Cancelled, phase)
	assert.Nil(t, c.Active())

	assert.True(t, c.PointerDown("b", 15), "re-opened once idle")
}

func TestController_FullDrag(t *testing.T) {
	f := newFixture(t, 100, grid.Options{}, defs("a", "b", "c")...)
	c := f.controller()

	require.True(t, c.PointerDown("a", 5))
	c.PointerMove(6)
	assert.True(t, c.Dragging())
	c.PointerMove(27)

	phase, err := c.PointerUp(27)
	require.NoError(t, err)
	assert.Equal(t, Committed, phase)
	assert.Equal(t, []string{"b", "c", "a"}, f.order())
}

func TestController_PointerEventsWithoutDrag(t *testing.T) {
	f := newFixture(t, 100, grid.Options{}, defs("a")...)
	c := f.controller()

	assert.False(t, c.PointerMove(10))
	phase, err := c.PointerUp(10)
	require.NoError(t, err)
	assert.Equal(t, Idle, phase)
}

func TestController_RebindDropsHiddenColumn(t *testing.T) {
	f := newFixture(t, 100, grid.Options{}, defs("a", "b")...)
	c := f.controller()

	require.True(t, c.PointerDown("b", 15))
	c.PointerMove(16)

	require.NoError(t, f.grid.SetVisible("b", false))
	c.Rebind()

	assert.Nil(t, c.Active(), "open drag on a vanished cell is torn down")
	assert.False(t, f.proxy.live)
	assert.False(t, c.Bound("b"))
	assert.True(t, c.Bound("a"))
}

func TestController_Teardown(t *testing.T) {
	f := newFixture(t, 100, grid.Options{}, defs("a", "b")...)
	c := f.controller()

	require.True(t, c.PointerDown("a", 5))
	c.PointerMove(6)
	c.PointerMove(20)
	c.Teardown()

	assert.Nil(t, c.Active())
	assert.False(t, f.proxy.live)
	assert.False(t, c.Bound("a"), "all listeners unbound")
	assert.Equal(t, []string{"a", "b"}, f.order())

	c.Rebind()
	assert.True(t, c.Bound("a"))
}
