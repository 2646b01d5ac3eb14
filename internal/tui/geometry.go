package tui

import (
	"github.com/thenoetrevino/colgrid/internal/drag"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/types"
)

var (
	_ drag.Viewport     = (*gridView)(nil)
	_ drag.EdgeScroller = (*gridView)(nil)
	_ drag.VisualProxy  = (*gridView)(nil)
)

// proxyState is the floating header copy drawn while a column is dragged
type proxyState struct {
	live   bool
	id     types.ColumnID
	offset int // Relative to the data viewport's left edge
	width  int
	target int // Absolute index the column would land on
}

// gridView lays the column set out on screen. Data columns scroll
// horizontally inside the data viewport; the fixed row header stays put,
// left of it in LTR and right of it in RTL.
//
// Positions are in screen space. The scroll offset is kept from the reading
// start (left in LTR, right in RTL) so it survives resizes; ScrollLeft
// converts it to the distance from the strip's left end.
type gridView struct {
	columns *grid.ColumnSet
	rtl     bool
	width   int

	offset int
	proxy  proxyState
}

func newGridView(columns *grid.ColumnSet, rtl bool) *gridView {
	return &gridView{columns: columns, rtl: rtl}
}

func (v *gridView) setWidth(width int) {
	v.width = width
	v.clamp()
}

// container is the width of the fixed row header, 0 when hidden
func (v *gridView) container() int {
	return v.columns.VisibleWidthBefore(v.columns.FixedCount())
}

func (v *gridView) contentWidth() int {
	return v.columns.TotalVisibleWidth() - v.container()
}

func (v *gridView) maxScroll() int {
	return max(v.contentWidth()-v.Width(), 0)
}

// dataLeft is the screen x of the data viewport's left edge
func (v *gridView) dataLeft() int {
	if v.rtl {
		return 0
	}
	return v.container()
}

// containerLeft is the screen x of the row header
func (v *gridView) containerLeft() int {
	if v.rtl {
		return v.Width()
	}
	return 0
}

// span returns column i's extent on the unscrolled strip
func (v *gridView) span(i int) (start, end int) {
	start = v.columns.VisibleWidthBefore(i) - v.container()
	end = start + v.columns.At(i).ResolvedWidth()
	if !v.rtl {
		return start, end
	}
	// Mirror the strip and keep a narrow one flush with the row header
	total := v.contentWidth()
	slack := max(v.Width()-total, 0)
	return total - end + slack, total - start + slack
}

// Left is the grid's left edge. The grid fills the terminal.
func (v *gridView) Left() int { return 0 }

// Width is the width of the data viewport
func (v *gridView) Width() int {
	return max(v.width-v.container(), 0)
}

// HasLeftContainer reports whether the row header renders left of the data.
// In RTL it sits on the right and does not shift the pointer origin.
func (v *gridView) HasLeftContainer() bool {
	return !v.rtl && v.container() > 0
}

func (v *gridView) LeftContainerWidth() int {
	return v.container()
}

func (v *gridView) ScrollLeft() int {
	if v.rtl {
		return v.maxScroll() - v.offset
	}
	return v.offset
}

func (v *gridView) setScrollLeft(x int) {
	if v.rtl {
		v.offset = v.maxScroll() - x
	} else {
		v.offset = x
	}
	v.clamp()
}

// clamp refits the column widths to the viewport and keeps the scroll offset
// in range
func (v *gridView) clamp() {
	v.fitColumns()
	v.offset = min(max(v.offset, 0), v.maxScroll())
}

// fitColumns records the drawn width of every data column: its configured
// width, cut to the data viewport
func (v *gridView) fitColumns() {
	vw := v.Width()
	for _, col := range v.columns.DataColumns() {
		col.DrawnWidth = 0
		if vw > 0 {
			col.DrawnWidth = min(col.ConfiguredWidth(), vw)
		}
	}
}

func (v *gridView) CellBounds(id types.ColumnID) (int, int, bool) {
	i := v.columns.IndexOf(id)
	if i < v.columns.FixedCount() || !v.columns.At(i).Visible {
		return 0, 0, false
	}
	start, end := v.span(i)
	sl := v.ScrollLeft()
	return start - sl, end - sl, true
}

// RequestScroll pans the data viewport by delta cells in screen space
func (v *gridView) RequestScroll(delta int) {
	v.setScrollLeft(v.ScrollLeft() + delta)
}

// scrollBy pans by step cells along the reading direction
func (v *gridView) scrollBy(step int) {
	v.offset += step
	v.clamp()
}

// ensureVisible scrolls the least needed to bring column i on screen
func (v *gridView) ensureVisible(i int) {
	if i < v.columns.FixedCount() {
		return
	}
	start, end := v.span(i)
	sl, w := v.ScrollLeft(), v.Width()
	switch {
	case end-start >= w || start < sl:
		v.setScrollLeft(start)
	case end > sl+w:
		v.setScrollLeft(end - w)
	}
}

// hit returns the index of the column rendered at screen x
func (v *gridView) hit(x int) (int, bool) {
	if c := v.container(); c > 0 {
		if left := v.containerLeft(); x >= left && x < left+c {
			return 0, true
		}
	}
	if x < v.dataLeft() || x >= v.dataLeft()+v.Width() {
		return 0, false
	}
	pos := x - v.dataLeft() + v.ScrollLeft()
	for i := v.columns.FixedCount(); i < v.columns.Len(); i++ {
		if !v.columns.At(i).Visible {
			continue
		}
		if start, end := v.span(i); pos >= start && pos < end {
			return i, true
		}
	}
	return 0, false
}

func (v *gridView) Create(id types.ColumnID, offset, width int) {
	v.proxy = proxyState{live: true, id: id, offset: offset, width: width, target: v.columns.IndexOf(id)}
}

func (v *gridView) Update(offset, width, targetIndex int) {
	v.proxy.offset = offset
	v.proxy.width = width
	v.proxy.target = targetIndex
}

func (v *gridView) Destroy() {
	v.proxy = proxyState{}
}
