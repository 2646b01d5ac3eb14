package grid

import "github.com/thenoetrevino/colgrid/internal/models"

// DefaultRowHeaderWidth is the width of the "#" row-number column
const DefaultRowHeaderWidth = 5

// Options are the grid-level settings of the reorder engine.
type Options struct {
	// EnableColumnMoving is the default for columns that don't set their own
	// flag. nil means enabled; only an explicit false disables moving.
	EnableColumnMoving *bool

	// RowHeader prepends a fixed row-number column
	RowHeader bool

	// RowHeaderWidth overrides DefaultRowHeaderWidth when positive
	RowHeaderWidth int

	// RTL mirrors drag direction for right-to-left grids
	RTL bool
}

// MovingEnabled returns the grid-level default for enableColumnMoving
func (o Options) MovingEnabled() bool {
	return o.EnableColumnMoving == nil || *o.EnableColumnMoving
}

// ResolveMovable returns the effective movable flag for def: the column's own
// setting when present, else the grid default.
func (o Options) ResolveMovable(def *models.ColumnDef) bool {
	if def != nil && def.EnableColumnMoving != nil {
		return *def.EnableColumnMoving
	}
	return o.MovingEnabled()
}

func (o Options) rowHeaderWidth() int {
	if o.RowHeaderWidth > 0 {
		return o.RowHeaderWidth
	}
	return DefaultRowHeaderWidth
}
