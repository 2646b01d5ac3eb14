package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/colgrid/internal/drag"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/tui/state"
)

// Screen rows above the data
const (
	headerY = 1
	bodyY   = 3
)

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		m.Close()
		return m, tea.Quit
	default:
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case flushMsg:
		m.ws.Queue.Drain()
		if err := m.ws.TakeSaveError(); err != nil {
			m.NotificationState.Add(state.LevelError, "Column order not saved: "+err.Error())
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	case tea.MouseClickMsg:
		m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		m.controller.PointerMove(msg.X)

	case tea.MouseReleaseMsg:
		m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		m.handleMouseWheel(msg)
	}

	return m, tea.Batch(cmd, m.flushCmd())
}

func (m Model) handleResize(msg tea.WindowSizeMsg) {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.view.setWidth(msg.Width)
	m.UiState.EnsureRowVisible()
}

// ============================================================================
// KEYBOARD
// ============================================================================

func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.UiState.Mode() == state.HelpMode {
		switch {
		case key.Matches(msg, m.keys.help, m.keys.quit), msg.String() == "esc",
			msg.String() == "enter", msg.String() == "space":
			m.UiState.SetMode(state.NormalMode)
		}
		return nil
	}

	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.help):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.prevColumn):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.nextColumn):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.prevRow):
		m.UiState.MoveRow(-1, len(m.ws.Dataset.Rows))
	case key.Matches(msg, m.keys.nextRow):
		m.UiState.MoveRow(1, len(m.ws.Dataset.Rows))
	case key.Matches(msg, m.keys.scrollLeft):
		m.view.scrollBy(-m.Config.Grid.ScrollStep)
	case key.Matches(msg, m.keys.scrollRight):
		m.view.scrollBy(m.Config.Grid.ScrollStep)
	}

	// Everything below changes the column set, which waits for the drag
	if m.controller.Active() != nil {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.moveLeft):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.moveRight):
		m.moveSelected(1)
	case key.Matches(msg, m.keys.toggle):
		m.hideSelected()
	case key.Matches(msg, m.keys.showAll):
		m.rebuilt(m.ws.ShowAll(), "Showing all columns")
	case key.Matches(msg, m.keys.reset):
		m.rebuilt(m.ws.Reset(m.Ctx), "Column order reset")
	case key.Matches(msg, m.keys.reload):
		_, err := m.ws.Reload()
		m.UiState.SelectRow(m.UiState.SelectedRow(), len(m.ws.Dataset.Rows))
		m.rebuilt(err, "Reloaded "+m.ws.Path)
	}
	return nil
}

// toIndexDirection turns a visual step into a step along the column order
func (m Model) toIndexDirection(visual int) int {
	if m.view.rtl {
		return -visual
	}
	return visual
}

// moveCursor selects the next visible data column toward visual direction dir
func (m Model) moveCursor(dir int) {
	cols := m.visibleData()
	if len(cols) == 0 {
		return
	}
	at := 0
	for i, col := range cols {
		if col.ID == m.UiState.SelectedColumn() {
			at = i
			break
		}
	}
	next := min(max(at+m.toIndexDirection(dir), 0), len(cols)-1)
	m.UiState.SetSelectedColumn(cols[next].ID)
	m.view.ensureVisible(m.selectedIndex())
}

// moveSelected moves the cursor column one slot toward visual direction dir
func (m Model) moveSelected(dir int) {
	set := m.ws.Grid.Columns()
	from := slotOf(set, m.UiState.SelectedColumn())
	to := from + m.toIndexDirection(dir)
	if from < 0 || to < 0 || to >= set.MovableVisibleCount() {
		return
	}
	if err := m.ws.Grid.MoveColumn(from, to); err != nil {
		m.reportMoveError(err)
		return
	}
	m.view.ensureVisible(m.selectedIndex())
}

func (m Model) hideSelected() {
	cols := m.visibleData()
	if len(cols) <= 1 {
		m.NotificationState.Add(state.LevelError, "Cannot hide the last column")
		return
	}
	id := m.UiState.SelectedColumn()
	if err := m.ws.Grid.SetVisible(id, false); err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.rebuilt(nil, fmt.Sprintf("Hid %s", id))
}

// rebuilt resyncs the drag bindings and the cursor after the column set was
// rebuilt, then reports err or msg
func (m Model) rebuilt(err error, msg string) {
	m.controller.Rebind()
	m.view.clamp()
	if m.selectedIndex() < 0 || !m.ws.Grid.Columns().At(m.selectedIndex()).Visible {
		if cols := m.visibleData(); len(cols) > 0 {
			m.UiState.SetSelectedColumn(cols[0].ID)
		}
	}
	if err != nil {
		m.app.Logger().Error("column set update failed", "grid", m.ws.Name, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.NotificationState.Add(state.LevelInfo, msg)
}

func (m Model) reportMoveError(err error) {
	switch {
	case errors.Is(err, grid.ErrNotMovable):
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("%s is locked in place", m.UiState.SelectedColumn()))
	case errors.Is(err, grid.ErrNoVisibleTarget):
		// Nothing visible to swap with
	default:
		m.NotificationState.Add(state.LevelError, err.Error())
	}
}

// ============================================================================
// MOUSE
// ============================================================================

func (m Model) handleMouseClick(msg tea.MouseClickMsg) {
	if msg.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode {
		return
	}
	i, ok := m.view.hit(msg.X)
	if !ok {
		return
	}
	col := m.ws.Grid.Columns().At(i)

	switch {
	case msg.Y == headerY:
		if col.IsRowHeader {
			return
		}
		m.NotificationState.Clear()
		m.UiState.SetSelectedColumn(col.ID)
		m.controller.PointerDown(col.ID, msg.X)
	case msg.Y >= bodyY:
		m.UiState.SelectRow(m.UiState.RowOffset()+msg.Y-bodyY, len(m.ws.Dataset.Rows))
		if !col.IsRowHeader {
			m.UiState.SetSelectedColumn(col.ID)
		}
	}
}

func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) {
	phase, err := m.controller.PointerUp(msg.X)
	if err != nil {
		m.reportMoveError(err)
		return
	}
	if phase == drag.Committed {
		m.view.ensureVisible(m.selectedIndex())
	}
}

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) {
	rows := len(m.ws.Dataset.Rows)
	switch msg.Button {
	case tea.MouseWheelUp:
		m.UiState.MoveRow(-1, rows)
	case tea.MouseWheelDown:
		m.UiState.MoveRow(1, rows)
	case tea.MouseWheelLeft:
		m.view.RequestScroll(-m.Config.Grid.ScrollStep)
	case tea.MouseWheelRight:
		m.view.RequestScroll(m.Config.Grid.ScrollStep)
	}
}
