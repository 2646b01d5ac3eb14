package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/colgrid/internal/tui/theme"
)

// styles are built from the theme when the model is created, after the
// configured color scheme has been applied
type styles struct {
	title  lipgloss.Style
	source lipgloss.Style
	rule   lipgloss.Style

	// Header row
	header         lipgloss.Style
	headerSelected lipgloss.Style
	headerDragged  lipgloss.Style // Placeholder left behind by the proxy
	dropTarget     lipgloss.Style
	proxy          lipgloss.Style

	// Body
	rowHeader    lipgloss.Style
	cell         lipgloss.Style
	selectedRow  lipgloss.Style
	selectedCell lipgloss.Style

	// Status line
	info  lipgloss.Style
	error lipgloss.Style
	muted lipgloss.Style
}

func newStyles() styles {
	headerBg := lipgloss.Color(theme.HeaderBg)
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.HeaderFg)).
		Background(headerBg)

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		source: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		rule:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)),

		header:         header,
		headerSelected: header.Foreground(lipgloss.Color(theme.Accent)).Underline(true),
		headerDragged:  header.Foreground(lipgloss.Color(theme.Subtle)).Bold(false).Faint(true),
		dropTarget:     header.Background(lipgloss.Color(theme.DropTarget)),
		proxy: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.ProxyFg)).
			Background(lipgloss.Color(theme.ProxyBg)),

		rowHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.RowHeader)),
		cell:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)),
		selectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(theme.SelectedBg)),
		selectedCell: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			Background(lipgloss.Color(theme.SelectedBg)),

		info:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.InfoFg)),
		error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ErrorFg)),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
	}
}
