package state

import "github.com/thenoetrevino/colgrid/internal/types"

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode Mode = iota // Grid navigation and dragging
	HelpMode               // Help overlay, any key closes it
)

// chromeHeight is the title line, the header row, the rule under it and the
// status line
const chromeHeight = 4

// UIState manages the user interface state: cursor, vertical scrolling,
// terminal dimensions and the current mode. Horizontal scrolling belongs to
// the grid viewport since drags drive it.
type UIState struct {
	// selectedColumn is the column under the cursor. Tracking the id keeps
	// the cursor on the same column when the order changes.
	selectedColumn types.ColumnID

	// selectedRow is the index of the row under the cursor
	selectedRow int

	// rowOffset is the index of the first rendered row
	rowOffset int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the column under the cursor.
func (s *UIState) SelectedColumn() types.ColumnID {
	return s.selectedColumn
}

// SetSelectedColumn moves the cursor to column id.
func (s *UIState) SetSelectedColumn(id types.ColumnID) {
	s.selectedColumn = id
}

// SelectedRow returns the index of the row under the cursor.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// RowOffset returns the index of the first rendered row.
func (s *UIState) RowOffset() int {
	return s.rowOffset
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the number of data rows that fit on screen, at least 1.
func (s *UIState) ContentHeight() int {
	return max(s.height-chromeHeight, 1)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// MoveRow moves the row cursor by delta, clamped to [0, rowCount), and
// scrolls so the cursor stays on screen. Returns true if the cursor moved.
func (s *UIState) MoveRow(delta, rowCount int) bool {
	if rowCount == 0 {
		return false
	}
	next := min(max(s.selectedRow+delta, 0), rowCount-1)
	if next == s.selectedRow {
		return false
	}
	s.selectedRow = next
	s.EnsureRowVisible()
	return true
}

// SelectRow puts the cursor on row, clamped to [0, rowCount).
func (s *UIState) SelectRow(row, rowCount int) {
	if rowCount == 0 {
		s.selectedRow, s.rowOffset = 0, 0
		return
	}
	s.selectedRow = min(max(row, 0), rowCount-1)
	s.EnsureRowVisible()
}

// EnsureRowVisible adjusts the row offset so the selected row is rendered.
func (s *UIState) EnsureRowVisible() {
	visible := s.ContentHeight()
	if s.selectedRow < s.rowOffset {
		s.rowOffset = s.selectedRow
	}
	if s.selectedRow >= s.rowOffset+visible {
		s.rowOffset = s.selectedRow - visible + 1
	}
}
