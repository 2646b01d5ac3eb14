package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumn_ResolvedWidth(t *testing.T) {
	def := &ColumnDef{Name: "a", Width: 12}

	tests := []struct {
		name string
		col  Column
		want int
	}{
		{"drawn wins", Column{Def: def, DrawnWidth: 7, Width: 9}, 7},
		{"configured next", Column{Def: def, Width: 9}, 9},
		{"definition last", Column{Def: def}, 12},
		{"nothing", Column{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.ResolvedWidth())
		})
	}
}

func TestColumn_ConfiguredWidthIgnoresDrawn(t *testing.T) {
	def := &ColumnDef{Name: "a", Width: 12}

	assert.Equal(t, 12, (&Column{Def: def, DrawnWidth: 7}).ConfiguredWidth())
	assert.Equal(t, 9, (&Column{Def: def, DrawnWidth: 7, Width: 9}).ConfiguredWidth())
}

func TestColumn_Title(t *testing.T) {
	assert.Equal(t, "Name", (&Column{ID: "n", Def: &ColumnDef{Name: "n", DisplayName: "Name"}}).Title())
	assert.Equal(t, "n", (&Column{ID: "n", Def: &ColumnDef{Name: "n"}}).Title())
	assert.Equal(t, "#", (&Column{ID: RowHeaderID}).Title())
}
