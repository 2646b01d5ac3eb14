package grid

import "github.com/thenoetrevino/colgrid/internal/types"

// OrderCache remembers the last committed order of the data-bearing columns
// so it can be restored after the column set is rebuilt from fresh definitions.
type OrderCache struct {
	ids []types.ColumnID
}

// NewOrderCache returns an empty cache
func NewOrderCache() *OrderCache {
	return &OrderCache{}
}

// Snapshot records the current order of the non-fixed columns in set
func (c *OrderCache) Snapshot(set *ColumnSet) {
	data := set.DataColumns()
	ids := make([]types.ColumnID, len(data))
	for i, col := range data {
		ids[i] = col.ID
	}
	c.ids = ids
}

// Restore seeds the cache with a previously persisted order
func (c *OrderCache) Restore(ids []types.ColumnID) {
	c.ids = append([]types.ColumnID(nil), ids...)
}

// IDs returns a copy of the cached order
func (c *OrderCache) IDs() []types.ColumnID {
	return append([]types.ColumnID(nil), c.ids...)
}

// Len returns the number of cached identities
func (c *OrderCache) Len() int {
	return len(c.ids)
}

// Reconcile re-applies the cached order to a rebuilt set. Cached ids are
// visited in order; any that sit at a different relative position are pulled
// out and reinserted at their cached position after the fixed prefix. Ids
// missing from the set are skipped and uncached columns are left where the
// rebuild put them. Reports whether anything moved.
func (c *OrderCache) Reconcile(set *ColumnSet) bool {
	offset := set.FixedCount()
	changed := false

	for cacheIndex, id := range c.ids {
		current := set.IndexOf(id)
		if current == -1 || current-offset == cacheIndex {
			continue
		}
		target := min(cacheIndex+offset, set.Len()-1)
		if target == current {
			continue
		}
		set.rotate(current, target)
		changed = true
	}
	return changed
}
