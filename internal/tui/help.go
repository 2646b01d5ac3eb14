package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/colgrid/internal/tui/theme"
)

const helpWidth = 64

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown documents every binding plus the mouse gestures
func helpMarkdown(k keyMap) string {
	var b strings.Builder
	b.WriteString("# colgrid\n\n")

	sections := []string{"Navigation", "Columns", "General"}
	for i, group := range k.FullHelp() {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", sections[i])
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Mouse\n\n")
	b.WriteString("Drag a column header sideways and release it to move the column. ")
	b.WriteString("Dragging past the edge of the screen scrolls the grid. ")
	b.WriteString("Click a cell to select it.\n")
	return b.String()
}

// renderHelp turns the help markdown into terminal output, falling back to
// the raw markdown when glamour fails
func renderHelp(k keyMap) string {
	md := helpMarkdown(k)
	renderer, err := getRenderer(helpWidth)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// helpLayer boxes the rendered help and centers it on screen
func helpLayer(rendered string, screenWidth, screenHeight int) *lipgloss.Layer {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(rendered)
	return centeredLayer(box, screenWidth, screenHeight)
}

// centeredLayer positions content at the center of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(2)
}
