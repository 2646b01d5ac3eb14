package drag

import (
	"log/slog"

	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// Controller owns the sessions of one grid's header cells. While a session is
// open the pointer-down path is closed for every other cell, so at most one
// drag exists at a time.
type Controller struct {
	columns   *grid.ColumnSet
	committer Committer
	env       Env
	opts      Options

	sessions map[types.ColumnID]*Session
	active   *Session
}

// NewController creates a controller and binds a session to every movable
// header cell of columns.
func NewController(columns *grid.ColumnSet, committer Committer, env Env, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	c := &Controller{
		columns:   columns,
		committer: committer,
		env:       env,
		opts:      opts,
		sessions:  make(map[types.ColumnID]*Session),
	}
	c.Rebind()
	return c
}

// Rebind syncs sessions with the current column set: movable data columns
// get a session, everything else loses its own. An open drag whose column
// disappeared is torn down.
func (c *Controller) Rebind() {
	wanted := make(map[types.ColumnID]struct{})
	for _, col := range c.columns.Columns() {
		if col.IsRowHeader || !col.Movable || !col.Visible {
			continue
		}
		wanted[col.ID] = struct{}{}
		if _, ok := c.sessions[col.ID]; !ok {
			c.sessions[col.ID] = NewSession(col.ID, c.columns, c.committer, c.env, c.opts)
		}
	}

	for id, s := range c.sessions {
		if _, ok := wanted[id]; ok {
			continue
		}
		if s == c.active {
			s.Teardown()
			c.active = nil
		}
		delete(c.sessions, id)
	}
}

// Bound reports whether the header cell of id accepts pointer-down
func (c *Controller) Bound(id types.ColumnID) bool {
	if c.active != nil {
		return false
	}
	_, ok := c.sessions[id]
	return ok
}

// Active returns the open session, or nil
func (c *Controller) Active() *Session {
	return c.active
}

// Dragging reports whether the open session has confirmed a drag
func (c *Controller) Dragging() bool {
	return c.active != nil && c.active.Phase() == Dragging
}

// PointerDown arms the session of id. It is refused while another drag is
// open or when the column has no session.
func (c *Controller) PointerDown(id types.ColumnID, x int) bool {
	if !c.Bound(id) {
		return false
	}
	s := c.sessions[id]
	if !s.Down(x) {
		return false
	}
	c.active = s
	return true
}

// PointerMove routes a move to the open session
func (c *Controller) PointerMove(x int) bool {
	if c.active == nil {
		return false
	}
	c.active.Move(x)
	return true
}

// PointerUp ends the open drag and re-opens pointer-down for every cell
func (c *Controller) PointerUp(x int) (Phase, error) {
	if c.active == nil {
		return Idle, nil
	}
	s := c.active
	c.active = nil
	return s.Up(x)
}

// Teardown discards any drag in progress and drops every binding
func (c *Controller) Teardown() {
	for id, s := range c.sessions {
		s.Teardown()
		delete(c.sessions, id)
	}
	c.active = nil
}
