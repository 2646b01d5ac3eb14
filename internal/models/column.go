package models

import "github.com/thenoetrevino/colgrid/internal/types"

// RowHeaderID is the identity of the structural row-number column
const RowHeaderID types.ColumnID = "#"

// ColumnDef is the user-facing definition of a grid column.
// Pointer fields distinguish "not configured" from an explicit false.
type ColumnDef struct {
	Name               string `yaml:"name"`
	DisplayName        string `yaml:"display_name,omitempty"`
	Width              int    `yaml:"width,omitempty"`
	Visible            *bool  `yaml:"visible,omitempty"`
	EnableColumnMoving *bool  `yaml:"enable_column_moving,omitempty"`
}

// Title returns the header label for the definition
func (d *ColumnDef) Title() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}

// Column is one runtime grid column built from a ColumnDef.
type Column struct {
	ID  types.ColumnID // Stable identity, independent of the column's index
	Def *ColumnDef     // Definition this column was built from

	DrawnWidth int // Width the last render gave the column (0 = not drawn yet)
	Width      int // Runtime override of Def.Width, set by the host (0 = none)

	Visible     bool // Invisible columns occupy no geometry
	Movable     bool // Resolved enableColumnMoving flag
	IsRowHeader bool // Structural column, never reordered
}

// ResolvedWidth returns the column width falling back from drawn width to
// configured width to definition width.
func (c *Column) ResolvedWidth() int {
	if c.DrawnWidth > 0 {
		return c.DrawnWidth
	}
	return c.ConfiguredWidth()
}

// ConfiguredWidth is the width before any render: the runtime width, else
// the definition width
func (c *Column) ConfiguredWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	if c.Def != nil {
		return c.Def.Width
	}
	return 0
}

// Title returns the header label for the column
func (c *Column) Title() string {
	if c.Def != nil {
		return c.Def.Title()
	}
	return string(c.ID)
}

// BoolPtr returns a pointer to b, for building definitions in code
func BoolPtr(b bool) *bool {
	return &b
}
