package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// col builds a visible, movable data column with the given definition width
func col(id string, width int) *models.Column {
	return &models.Column{
		ID:      types.ColumnID(id),
		Def:     &models.ColumnDef{Name: id, Width: width},
		Visible: true,
		Movable: true,
	}
}

func hidden(c *models.Column) *models.Column {
	c.Visible = false
	return c
}

func pinned(c *models.Column) *models.Column {
	c.Movable = false
	return c
}

func rowHeader() *models.Column {
	return &models.Column{
		ID:          models.RowHeaderID,
		Def:         &models.ColumnDef{Name: "#", Width: 5},
		Visible:     true,
		IsRowHeader: true,
	}
}

func newSet(t *testing.T, cols ...*models.Column) *ColumnSet {
	t.Helper()
	set, err := NewColumnSet(cols)
	require.NoError(t, err)
	return set
}

func ids(set *ColumnSet) []string {
	out := make([]string, 0, set.Len())
	for _, id := range set.IDs() {
		out = append(out, string(id))
	}
	return out
}

// recorder collects notifications for later assertions
type recorder struct {
	changes []PositionChange
}

func (r *recorder) listen(change PositionChange) {
	r.changes = append(r.changes, change)
}
