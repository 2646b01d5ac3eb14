package config

import (
	"github.com/thenoetrevino/colgrid/internal/dataset"
	"github.com/thenoetrevino/colgrid/internal/drag"
	"github.com/thenoetrevino/colgrid/internal/grid"
)

// GridConfig holds the grid-level options shared by every loaded file
type GridConfig struct {
	// EnableColumnMoving is the default for columns without their own
	// setting. Unset means enabled.
	EnableColumnMoving *bool `yaml:"enable_column_moving,omitempty"`

	RTL            bool  `yaml:"rtl"`
	RowHeader      *bool `yaml:"row_header,omitempty"` // Unset means shown
	RowHeaderWidth int   `yaml:"row_header_width"`

	EdgeScrollMultiplier int `yaml:"edge_scroll_multiplier"`
	ScrollStep           int `yaml:"scroll_step"` // Cells per keyboard scroll

	MinColumnWidth int `yaml:"min_column_width"`
	MaxColumnWidth int `yaml:"max_column_width"`
}

const defaultScrollStep = 8

// DefaultGridConfig returns the default grid options
func DefaultGridConfig() GridConfig {
	return GridConfig{
		RowHeaderWidth:       grid.DefaultRowHeaderWidth,
		EdgeScrollMultiplier: drag.DefaultScrollMultiplier,
		ScrollStep:           defaultScrollStep,
		MinColumnWidth:       dataset.DefaultMinColumnWidth,
		MaxColumnWidth:       dataset.DefaultMaxColumnWidth,
	}
}

func (g *GridConfig) applyDefaults() {
	d := DefaultGridConfig()
	if g.RowHeaderWidth <= 0 {
		g.RowHeaderWidth = d.RowHeaderWidth
	}
	if g.EdgeScrollMultiplier <= 0 {
		g.EdgeScrollMultiplier = d.EdgeScrollMultiplier
	}
	if g.ScrollStep <= 0 {
		g.ScrollStep = d.ScrollStep
	}
	if g.MinColumnWidth <= 0 {
		g.MinColumnWidth = d.MinColumnWidth
	}
	if g.MaxColumnWidth <= 0 {
		g.MaxColumnWidth = d.MaxColumnWidth
	}
}

// Options converts the config into grid options
func (g GridConfig) Options() grid.Options {
	return grid.Options{
		EnableColumnMoving: g.EnableColumnMoving,
		RowHeader:          g.RowHeader == nil || *g.RowHeader,
		RowHeaderWidth:     g.RowHeaderWidth,
		RTL:                g.RTL,
	}
}

// LoadOptions converts the config into dataset loading options
func (g GridConfig) LoadOptions() dataset.LoadOptions {
	return dataset.LoadOptions{
		MinColumnWidth: g.MinColumnWidth,
		MaxColumnWidth: g.MaxColumnWidth,
	}
}
