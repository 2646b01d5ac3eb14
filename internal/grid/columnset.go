// Package grid implements the column reorder engine: the ordered column set,
// the order cache that survives rebuilds, the displacement resolver and the
// reorderer that commits moves and notifies listeners.
package grid

import (
	"fmt"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// ColumnSet is the ordered sequence of grid columns in render order, fixed
// row-header columns first. Exported methods never mutate the set; only the
// reorderer and the order cache rearrange it.
type ColumnSet struct {
	columns []*models.Column
}

// NewColumnSet validates cols and wraps them in a ColumnSet.
// The slice is copied; the column records themselves are shared.
func NewColumnSet(cols []*models.Column) (*ColumnSet, error) {
	if err := validateColumns(cols); err != nil {
		return nil, err
	}
	s := &ColumnSet{columns: make([]*models.Column, len(cols))}
	copy(s.columns, cols)
	return s, nil
}

// Replace swaps in a freshly rebuilt column slice. Callers are expected to
// reconcile the order cache afterwards.
func (s *ColumnSet) Replace(cols []*models.Column) error {
	if err := validateColumns(cols); err != nil {
		return err
	}
	s.columns = make([]*models.Column, len(cols))
	copy(s.columns, cols)
	return nil
}

func validateColumns(cols []*models.Column) error {
	seen := make(map[types.ColumnID]struct{}, len(cols))
	dataSeen := false
	for i, c := range cols {
		if c == nil || c.ID == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyColumnID)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		seen[c.ID] = struct{}{}

		if c.IsRowHeader {
			if dataSeen {
				return fmt.Errorf("column %q at %d: %w", c.ID, i, ErrFixedNotPrefix)
			}
			continue
		}
		dataSeen = true
	}
	return nil
}

// Len returns the number of columns, fixed ones included
func (s *ColumnSet) Len() int {
	return len(s.columns)
}

// At returns the column at absolute index i, or nil when i is out of range
func (s *ColumnSet) At(i int) *models.Column {
	if i < 0 || i >= len(s.columns) {
		return nil
	}
	return s.columns[i]
}

// IndexOf returns the absolute index of the column with the given id, or -1
func (s *ColumnSet) IndexOf(id types.ColumnID) int {
	for i, c := range s.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Columns returns a copy of the ordered column slice
func (s *ColumnSet) Columns() []*models.Column {
	out := make([]*models.Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// IDs returns the identities of all columns in render order
func (s *ColumnSet) IDs() []types.ColumnID {
	ids := make([]types.ColumnID, len(s.columns))
	for i, c := range s.columns {
		ids[i] = c.ID
	}
	return ids
}

// DataColumns returns the non-fixed columns in render order
func (s *ColumnSet) DataColumns() []*models.Column {
	out := make([]*models.Column, 0, len(s.columns))
	for _, c := range s.columns {
		if !c.IsRowHeader {
			out = append(out, c)
		}
	}
	return out
}

// FixedCount returns the length of the fixed row-header prefix
func (s *ColumnSet) FixedCount() int {
	n := 0
	for _, c := range s.columns {
		if !c.IsRowHeader {
			break
		}
		n++
	}
	return n
}

// MovableVisibleCount returns how many slots the public move API addresses:
// visible columns outside the fixed prefix. A visible column whose movable
// flag is off still holds a slot; moving it is rejected with ErrNotMovable.
func (s *ColumnSet) MovableVisibleCount() int {
	n := 0
	for _, c := range s.columns {
		if c.Visible && !c.IsRowHeader {
			n++
		}
	}
	return n
}

// TotalVisibleWidth sums the resolved widths of every visible column
func (s *ColumnSet) TotalVisibleWidth() int {
	total := 0
	for _, c := range s.columns {
		if c.Visible {
			total += c.ResolvedWidth()
		}
	}
	return total
}

// VisibleWidthBefore sums the widths of visible columns that render before
// absolute index i.
func (s *ColumnSet) VisibleWidthBefore(i int) int {
	total := 0
	for j := 0; j < i && j < len(s.columns); j++ {
		if s.columns[j].Visible {
			total += s.columns[j].ResolvedWidth()
		}
	}
	return total
}

// rotate moves the column at from to to, shifting every column in between
// one slot toward from. Bounds are checked by the caller.
func (s *ColumnSet) rotate(from, to int) {
	moved := s.columns[from]
	if from > to {
		for i := from; i > to; i-- {
			s.columns[i] = s.columns[i-1]
		}
	} else {
		for i := from; i < to; i++ {
			s.columns[i] = s.columns[i+1]
		}
	}
	s.columns[to] = moved
}
