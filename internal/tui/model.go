// Package tui is the interactive grid viewer. Header cells can be dragged
// with the mouse or moved with the keyboard; every committed move is saved
// through the layout service once its deferred notification runs.
package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/colgrid/internal/app"
	"github.com/thenoetrevino/colgrid/internal/config"
	"github.com/thenoetrevino/colgrid/internal/drag"
	"github.com/thenoetrevino/colgrid/internal/grid"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/tui/state"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// flushMsg runs the work the reorderer deferred during the previous update
type flushMsg struct{}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config

	app        *app.App
	ws         *app.Workspace
	view       *gridView
	controller *drag.Controller

	keys     keyMap
	help     help.Model
	helpText string
	styles   styles

	UiState           *state.UIState
	NotificationState *state.NotificationState
}

// New opens req as a grid and builds the model around it
func New(ctx context.Context, a *app.App, req app.OpenRequest) (Model, error) {
	var view *gridView
	ws, err := a.Open(ctx, req, grid.WithRefresh(func() {
		if view != nil {
			view.clamp()
		}
	}))
	if err != nil {
		return Model{}, err
	}
	view = newGridView(ws.Grid.Columns(), ws.Grid.Options().RTL)

	keys := newKeyMap(a.Config.KeyMappings)
	m := Model{
		Ctx:               ctx,
		Config:            a.Config,
		app:               a,
		ws:                ws,
		view:              view,
		keys:              keys,
		help:              help.New(),
		helpText:          renderHelp(keys),
		styles:            newStyles(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
	}

	m.controller = drag.NewController(ws.Grid.Columns(), ws.Grid.Reorderer(),
		drag.Env{Viewport: view, Proxy: view, Scroller: view},
		drag.Options{
			RTL:              view.rtl,
			ScrollMultiplier: a.Config.Grid.EdgeScrollMultiplier,
			Logger:           a.Logger(),
		})

	notifications := m.NotificationState
	ws.Grid.Reorderer().OnColumnPositionChanged(func(change grid.PositionChange) {
		view.clamp()
		if i := ws.Grid.Columns().IndexOf(change.ColumnID); i >= 0 {
			view.ensureVisible(i)
		}
		notifications.Add(state.LevelInfo, fmt.Sprintf("Moved %s to slot %d",
			change.Column.Title(), slotOf(ws.Grid.Columns(), change.ColumnID)))
	})

	if first := m.visibleData(); len(first) > 0 {
		m.UiState.SetSelectedColumn(first[0].ID)
	}
	if ws.Restored {
		m.NotificationState.Add(state.LevelInfo, "Restored saved column order")
	}
	return m, nil
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// Workspace returns the opened file and its grid
func (m Model) Workspace() *app.Workspace {
	return m.ws
}

// Close discards any drag in progress and runs pending deferred work so the
// last move is saved
func (m Model) Close() {
	m.controller.Teardown()
	m.ws.Settle()
}

// flushCmd schedules a flushMsg when the reorderer deferred work
func (m Model) flushCmd() tea.Cmd {
	if m.ws.Queue.Pending() == 0 {
		return nil
	}
	return func() tea.Msg { return flushMsg{} }
}

// visibleData returns the visible data columns in index order
func (m Model) visibleData() []*models.Column {
	var out []*models.Column
	for _, col := range m.ws.Grid.Columns().DataColumns() {
		if col.Visible {
			out = append(out, col)
		}
	}
	return out
}

// selectedIndex returns the absolute index of the cursor column, or -1
func (m Model) selectedIndex() int {
	return m.ws.Grid.Columns().IndexOf(m.UiState.SelectedColumn())
}

// slotOf returns the public-API slot of id, or -1 when it has none
func slotOf(set *grid.ColumnSet, id types.ColumnID) int {
	slot := 0
	for _, col := range set.Columns() {
		if !col.Visible || col.IsRowHeader {
			continue
		}
		if col.ID == id {
			return slot
		}
		slot++
	}
	return -1
}
