// Package theme holds the colors the TUI renders with
package theme

import "github.com/thenoetrevino/colgrid/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	HeaderFg   string
	HeaderBg   string
	ProxyFg    string
	ProxyBg    string
	DropTarget string
	RowHeader  string
	Border     string
	SelectedBg string
	Subtle     string
	Normal     string
	InfoFg     string
	ErrorFg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	HeaderFg = colors.HeaderFg
	HeaderBg = colors.HeaderBg
	ProxyFg = colors.ProxyFg
	ProxyBg = colors.ProxyBg
	DropTarget = colors.DropTarget
	RowHeader = colors.RowHeader
	Border = colors.Border
	SelectedBg = colors.SelectedBg
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	ErrorFg = colors.ErrorFg
}
