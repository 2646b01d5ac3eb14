package models

import (
	"time"

	"github.com/thenoetrevino/colgrid/internal/types"
)

// Layout is the persisted column order of one grid
type Layout struct {
	GridName  types.GridName
	Source    string           // File the grid was loaded from, informational
	ColumnIDs []types.ColumnID // Data column order, fixed columns excluded
	UpdatedAt time.Time
}
