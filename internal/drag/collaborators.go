// Package drag turns pointer events on a header cell into column moves.
// A Session is the per-cell state machine; a Controller makes sure only one
// of them is ever armed or dragging per grid.
package drag

import "github.com/thenoetrevino/colgrid/internal/types"

// Viewport answers geometry questions in the pointer's coordinate space.
type Viewport interface {
	// Left is the grid's left edge
	Left() int
	// Width is the width of the scrollable data viewport
	Width() int
	// HasLeftContainer reports whether fixed columns render to the left of the viewport
	HasLeftContainer() bool
	// LeftContainerWidth is the width of the fixed left container
	LeftContainerWidth() int
	// ScrollLeft is the current horizontal scroll offset of the viewport
	ScrollLeft() int
	// CellBounds returns a header cell's left and right edges relative to the
	// viewport's left edge (after the left container)
	CellBounds(id types.ColumnID) (left, right int, ok bool)
}

// VisualProxy draws the floating copy of a header cell while it is dragged.
// Offsets are relative to the viewport's left edge.
type VisualProxy interface {
	Create(id types.ColumnID, offset, width int)
	Update(offset, width, targetIndex int)
	Destroy()
}

// EdgeScroller pans the viewport. Fire and forget.
type EdgeScroller interface {
	RequestScroll(pixelDelta int)
}

// Committer performs the absolute-index move on release. *grid.Reorderer
// satisfies it.
type Committer interface {
	RedrawColumnAtPosition(originalIndex, targetIndex int) error
}

// Env bundles the host collaborators a Session talks to.
type Env struct {
	Viewport Viewport
	Proxy    VisualProxy
	Scroller EdgeScroller
}
