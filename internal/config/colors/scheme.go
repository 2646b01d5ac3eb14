package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (cursor column, help title)
	Accent string `yaml:"accent"`

	// Header row
	HeaderFg string `yaml:"header_fg"`
	HeaderBg string `yaml:"header_bg"`

	// Drag feedback
	ProxyFg    string `yaml:"proxy_fg"`
	ProxyBg    string `yaml:"proxy_bg"`
	DropTarget string `yaml:"drop_target"` // Marker drawn at the live target index

	// Body
	RowHeader  string `yaml:"row_header"`
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.HeaderFg, preset.HeaderFg)
	fill(&c.HeaderBg, preset.HeaderBg)
	fill(&c.ProxyFg, preset.ProxyFg)
	fill(&c.ProxyBg, preset.ProxyBg)
	fill(&c.DropTarget, preset.DropTarget)
	fill(&c.RowHeader, preset.RowHeader)
	fill(&c.Border, preset.Border)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overlays every non-empty value of other onto c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(v *string, o string) {
		if o != "" {
			*v = o
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.HeaderFg, other.HeaderFg)
	merge(&c.HeaderBg, other.HeaderBg)
	merge(&c.ProxyFg, other.ProxyFg)
	merge(&c.ProxyBg, other.ProxyBg)
	merge(&c.DropTarget, other.DropTarget)
	merge(&c.RowHeader, other.RowHeader)
	merge(&c.Border, other.Border)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.ErrorFg, other.ErrorFg)
}
