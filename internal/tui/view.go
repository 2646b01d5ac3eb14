package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/colgrid/internal/dataset"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/tui/state"
)

// cellFunc returns the text and style of column col at absolute index i
type cellFunc func(col *models.Column, i int) (string, lipgloss.Style)

// segment is a rendered piece of a line starting at screen column x
type segment struct {
	x int
	s string
}

// View renders the current state of the application.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	lines := make([]string, 0, m.UiState.Height())
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderLine(m.headerCell))
	lines = append(lines, m.styles.rule.Render(strings.Repeat("─", m.UiState.Width())))

	rows := m.ws.Dataset.Rows
	end := min(m.UiState.RowOffset()+m.UiState.ContentHeight(), len(rows))
	for r := m.UiState.RowOffset(); r < end; r++ {
		lines = append(lines, m.renderLine(m.bodyCell(r)))
	}
	for len(lines) < m.UiState.Height()-1 {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderStatus())
	base := strings.Join(lines, "\n")

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if l := m.proxyLayer(); l != nil {
		layers = append(layers, l)
	}
	if m.UiState.Mode() == state.HelpMode {
		layers = append(layers, helpLayer(m.helpText, m.UiState.Width(), m.UiState.Height()))
	}
	if len(layers) == 1 {
		view.Content = base
		return view
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

func (m Model) renderTitle() string {
	title := m.styles.title.Render(string(m.ws.Name))
	meta := fmt.Sprintf(" %s · %d rows", m.ws.Path, len(m.ws.Dataset.Rows))
	if m.view.rtl {
		meta += " · rtl"
	}
	line := title + m.styles.source.Render(meta)
	return lipgloss.NewStyle().MaxWidth(m.UiState.Width()).Render(line)
}

// renderLine lays one row of cells out across the screen. Data cells are
// cut to the part inside the scrolled viewport.
func (m Model) renderLine(cell cellFunc) string {
	set := m.view.columns
	fixed := set.FixedCount()
	var segs []segment

	for i := range fixed {
		col := set.At(i)
		if !col.Visible {
			continue
		}
		text, style := cell(col, i)
		segs = append(segs, segment{
			x: m.view.containerLeft() + set.VisibleWidthBefore(i),
			s: style.Render(dataset.Fit(" "+text, col.ResolvedWidth())),
		})
	}

	vw, sl, left := m.view.Width(), m.view.ScrollLeft(), m.view.dataLeft()
	for i := fixed; i < set.Len(); i++ {
		col := set.At(i)
		if !col.Visible {
			continue
		}
		start, end := m.view.span(i)
		from, to := max(start, sl), min(end, sl+vw)
		if from >= to {
			continue
		}
		text, style := cell(col, i)
		plain := dataset.Fit(" "+text, end-start)
		segs = append(segs, segment{
			x: left + from - sl,
			s: style.Render(dataset.Cut(plain, from-start, to-start)),
		})
	}

	sort.Slice(segs, func(a, b int) bool { return segs[a].x < segs[b].x })
	var b strings.Builder
	pos := 0
	for _, seg := range segs {
		if seg.x > pos {
			b.WriteString(strings.Repeat(" ", seg.x-pos))
			pos = seg.x
		}
		b.WriteString(seg.s)
		pos += lipgloss.Width(seg.s)
	}
	return b.String()
}

func (m Model) headerCell(col *models.Column, i int) (string, lipgloss.Style) {
	p := m.view.proxy
	switch {
	case col.IsRowHeader:
		return col.Title(), m.styles.header
	case p.live && col.ID == p.id:
		return col.Title(), m.styles.headerDragged
	case p.live && i == p.target:
		return col.Title(), m.styles.dropTarget
	case col.ID == m.UiState.SelectedColumn():
		return col.Title(), m.styles.headerSelected
	}
	return col.Title(), m.styles.header
}

func (m Model) bodyCell(row int) cellFunc {
	selectedRow := row == m.UiState.SelectedRow()
	return func(col *models.Column, i int) (string, lipgloss.Style) {
		if col.IsRowHeader {
			return strconv.Itoa(row + 1), m.styles.rowHeader
		}
		text := m.ws.Dataset.Cell(row, col.ID)
		switch {
		case selectedRow && col.ID == m.UiState.SelectedColumn():
			return text, m.styles.selectedCell
		case selectedRow:
			return text, m.styles.selectedRow
		}
		return text, m.styles.cell
	}
}

// proxyLayer draws the dragged header on top of the header row
func (m Model) proxyLayer() *lipgloss.Layer {
	p := m.view.proxy
	if !p.live || p.width <= 0 {
		return nil
	}
	i := m.view.columns.IndexOf(p.id)
	if i < 0 {
		return nil
	}
	width := min(p.width, m.view.Width()-p.offset)
	if width <= 0 {
		return nil
	}
	content := m.styles.proxy.Render(dataset.Fit(" "+m.view.columns.At(i).Title(), width))
	return lipgloss.NewLayer(content).X(m.view.dataLeft() + p.offset).Y(headerY).Z(1)
}

func (m Model) renderStatus() string {
	width := m.UiState.Width()
	var left string
	if n, ok := m.NotificationState.Current(); ok {
		style := m.styles.info
		if n.Level == state.LevelError {
			style = m.styles.error
		}
		left = style.Render(n.Message)
	} else {
		left = m.help.View(m.keys)
	}

	right := m.styles.muted.Render(m.position())
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

// position describes the cursor as "slot/slots row/rows"
func (m Model) position() string {
	set := m.ws.Grid.Columns()
	rows := len(m.ws.Dataset.Rows)
	row := 0
	if rows > 0 {
		row = m.UiState.SelectedRow() + 1
	}
	return fmt.Sprintf("col %d/%d  row %d/%d",
		slotOf(set, m.UiState.SelectedColumn())+1, set.MovableVisibleCount(), row, rows)
}
