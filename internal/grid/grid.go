package grid

import (
	"fmt"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// Grid ties a column set to its order cache and reorderer and owns the
// column definitions it was built from.
type Grid struct {
	opts      Options
	defs      []models.ColumnDef
	columns   *ColumnSet
	cache     *OrderCache
	reorderer *Reorderer
}

// New builds a grid from defs. The order cache starts empty.
func New(defs []models.ColumnDef, opts Options, ropts ...ReordererOption) (*Grid, error) {
	g := &Grid{
		opts:  opts,
		defs:  append([]models.ColumnDef(nil), defs...),
		cache: NewOrderCache(),
	}

	set, err := NewColumnSet(BuildColumns(g.defs, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to build columns: %w", err)
	}
	g.columns = set
	g.reorderer = NewReorderer(set, g.cache, ropts...)
	return g, nil
}

// BuildColumns creates fresh column records for defs in definition order,
// resolving visibility and movability. With opts.RowHeader a fixed row-number
// column is prepended.
func BuildColumns(defs []models.ColumnDef, opts Options) []*models.Column {
	cols := make([]*models.Column, 0, len(defs)+1)
	if opts.RowHeader {
		cols = append(cols, &models.Column{
			ID:          models.RowHeaderID,
			Def:         &models.ColumnDef{Name: string(models.RowHeaderID), Width: opts.rowHeaderWidth()},
			Visible:     true,
			IsRowHeader: true,
		})
	}

	for i := range defs {
		def := defs[i]
		cols = append(cols, &models.Column{
			ID:      types.ColumnID(def.Name),
			Def:     &def,
			Visible: def.Visible == nil || *def.Visible,
			Movable: opts.ResolveMovable(&def),
		})
	}
	return cols
}

// Columns returns the live column set. Treat it as read only.
func (g *Grid) Columns() *ColumnSet {
	return g.columns
}

// Cache returns the grid's order cache
func (g *Grid) Cache() *OrderCache {
	return g.cache
}

// Reorderer returns the grid's reorderer
func (g *Grid) Reorderer() *Reorderer {
	return g.reorderer
}

// Options returns the grid-level options
func (g *Grid) Options() Options {
	return g.opts
}

// Definitions returns a copy of the column definitions in definition order
func (g *Grid) Definitions() []models.ColumnDef {
	return append([]models.ColumnDef(nil), g.defs...)
}

// MoveColumn moves a column by slot; see Reorderer.MoveColumn
func (g *Grid) MoveColumn(originalSlot, finalSlot int) error {
	return g.reorderer.MoveColumn(originalSlot, finalSlot)
}

// Rebuild recreates every column from defs, which resets the order to
// definition order, then reconciles it against the order cache. Reports
// whether reconciling changed the order.
func (g *Grid) Rebuild(defs []models.ColumnDef) (bool, error) {
	if err := g.columns.Replace(BuildColumns(defs, g.opts)); err != nil {
		return false, fmt.Errorf("failed to rebuild columns: %w", err)
	}
	g.defs = append([]models.ColumnDef(nil), defs...)
	return g.cache.Reconcile(g.columns), nil
}

// SetVisible changes a column's visibility through a full rebuild, the same
// path a reload of definitions takes.
func (g *Grid) SetVisible(id types.ColumnID, visible bool) error {
	defs := g.Definitions()
	found := false
	for i := range defs {
		if types.ColumnID(defs[i].Name) == id {
			defs[i].Visible = models.BoolPtr(visible)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("column %q: %w", id, ErrColumnNotFound)
	}
	_, err := g.Rebuild(defs)
	return err
}

// RestoreOrder seeds the cache with a persisted order and applies it
func (g *Grid) RestoreOrder(ids []types.ColumnID) bool {
	g.cache.Restore(ids)
	return g.cache.Reconcile(g.columns)
}
