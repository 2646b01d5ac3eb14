package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/colgrid/internal/config"
)

// keyMap holds the bindings of normal mode, built from the configured key
// mappings. Arrow keys always work alongside the configured navigation keys.
type keyMap struct {
	moveLeft    key.Binding
	moveRight   key.Binding
	toggle      key.Binding
	showAll     key.Binding
	reset       key.Binding
	reload      key.Binding
	prevColumn  key.Binding
	nextColumn  key.Binding
	prevRow     key.Binding
	nextRow     key.Binding
	scrollLeft  key.Binding
	scrollRight key.Binding
	help        key.Binding
	quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		moveLeft: key.NewBinding(
			key.WithKeys(km.MoveColumnLeft),
			key.WithHelp(km.MoveColumnLeft, "move column left"),
		),
		moveRight: key.NewBinding(
			key.WithKeys(km.MoveColumnRight),
			key.WithHelp(km.MoveColumnRight, "move column right"),
		),
		toggle: key.NewBinding(
			key.WithKeys(km.ToggleColumn),
			key.WithHelp(km.ToggleColumn, "hide column"),
		),
		showAll: key.NewBinding(
			key.WithKeys(km.ShowAllColumns),
			key.WithHelp(km.ShowAllColumns, "show all columns"),
		),
		reset: key.NewBinding(
			key.WithKeys(km.ResetLayout),
			key.WithHelp(km.ResetLayout, "reset column order"),
		),
		reload: key.NewBinding(
			key.WithKeys(km.Reload),
			key.WithHelp(km.Reload, "reload file"),
		),
		prevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn+"/←", "previous column"),
		),
		nextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn+"/→", "next column"),
		),
		prevRow: key.NewBinding(
			key.WithKeys(km.PrevRow, "up"),
			key.WithHelp(km.PrevRow+"/↑", "previous row"),
		),
		nextRow: key.NewBinding(
			key.WithKeys(km.NextRow, "down"),
			key.WithHelp(km.NextRow+"/↓", "next row"),
		),
		scrollLeft: key.NewBinding(
			key.WithKeys(km.ScrollViewportLeft),
			key.WithHelp(km.ScrollViewportLeft, "scroll back"),
		),
		scrollRight: key.NewBinding(
			key.WithKeys(km.ScrollViewportRight),
			key.WithHelp(km.ScrollViewportRight, "scroll forward"),
		),
		help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp is rendered in the status line
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.moveLeft, k.moveRight, k.toggle, k.help, k.quit}
}

// FullHelp groups every binding for the help overlay
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prevColumn, k.nextColumn, k.prevRow, k.nextRow, k.scrollLeft, k.scrollRight},
		{k.moveLeft, k.moveRight, k.toggle, k.showAll, k.reset, k.reload},
		{k.help, k.quit},
	}
}
