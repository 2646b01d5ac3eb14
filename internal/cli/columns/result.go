package columns

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/colgrid/internal/cli/styles"
	"github.com/thenoetrevino/colgrid/internal/grid"
)

// ColumnInfo describes one column of the effective order
type ColumnInfo struct {
	Index   int    `json:"index"`
	Slot    *int   `json:"slot,omitempty"` // Only visible data columns have a slot
	ID      string `json:"id"`
	Title   string `json:"title"`
	Width   int    `json:"width"`
	Visible bool   `json:"visible"`
	Movable bool   `json:"movable"`
	Fixed   bool   `json:"fixed"`
}

// ColumnList is the result of the columns command
type ColumnList struct {
	Grid     string       `json:"grid"`
	Restored bool         `json:"restored"`
	Columns  []ColumnInfo `json:"columns"`
}

// describe lists set in index order, numbering visible data columns by slot
func describe(set *grid.ColumnSet) []ColumnInfo {
	infos := make([]ColumnInfo, 0, set.Len())
	slot := 0
	for i, col := range set.Columns() {
		info := ColumnInfo{
			Index:   i,
			ID:      string(col.ID),
			Title:   col.Title(),
			Width:   col.ResolvedWidth(),
			Visible: col.Visible,
			Movable: col.Movable,
			Fixed:   col.IsRowHeader,
		}
		if col.Visible && !col.IsRowHeader {
			s := slot
			info.Slot = &s
			slot++
		}
		infos = append(infos, info)
	}
	return infos
}

func visibleIDs(infos []ColumnInfo) []string {
	var out []string
	for _, c := range infos {
		if c.Slot != nil {
			out = append(out, c.ID)
		}
	}
	return out
}

// QuietString lists the ids of the slotted columns in order
func (l ColumnList) QuietString() string {
	return strings.Join(visibleIDs(l.Columns), "\n")
}

// HumanString renders the list with one column per line
func (l ColumnList) HumanString() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(l.Grid))
	if l.Restored {
		b.WriteString(" " + styles.SubtitleStyle.Render("(saved order)"))
	}
	for _, c := range l.Columns {
		b.WriteString("\n")
		switch {
		case c.Fixed:
			b.WriteString(styles.FixedStyle.Render(fmt.Sprintf("   %s  fixed", c.Title)))
		case c.Slot == nil:
			b.WriteString(styles.HiddenStyle.Render(fmt.Sprintf("   %s  hidden", c.Title)))
		default:
			line := styles.LabelStyle.Render(fmt.Sprintf("%2d", *c.Slot)) + " " + styles.ValueStyle.Render(c.Title)
			if !c.Movable {
				line += " " + styles.SubtitleStyle.Render("locked")
			}
			b.WriteString(line)
		}
	}
	return b.String()
}

// MoveResult is the result of the move command
type MoveResult struct {
	Grid   string   `json:"grid"`
	Column string   `json:"column"`
	From   int      `json:"from"`
	To     int      `json:"to"`
	Moved  bool     `json:"moved"`
	Order  []string `json:"order"`
}

// QuietString is the new slotted order, comma separated
func (r MoveResult) QuietString() string {
	return strings.Join(r.Order, ",")
}

func (r MoveResult) HumanString() string {
	if !r.Moved {
		return styles.SubtitleStyle.Render(fmt.Sprintf("%s already at slot %d", r.Column, r.To))
	}
	return styles.SuccessStyle.Render(fmt.Sprintf("Moved %s from slot %d to %d", r.Column, r.From, r.To)) +
		"\n" + styles.ValueStyle.Render(strings.Join(r.Order, " | "))
}

// ResetResult is the result of the reset command
type ResetResult struct {
	Grid string `json:"grid"`
}

func (r ResetResult) QuietString() string {
	return r.Grid
}

func (r ResetResult) HumanString() string {
	return styles.SuccessStyle.Render("Forgot the saved column order of " + r.Grid)
}
