package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Columns
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`
	ToggleColumn    string `yaml:"toggle_column"`
	ShowAllColumns  string `yaml:"show_all_columns"`
	ResetLayout     string `yaml:"reset_layout"`
	Reload          string `yaml:"reload"`

	// Navigation
	PrevColumn          string `yaml:"prev_column"`
	NextColumn          string `yaml:"next_column"`
	PrevRow             string `yaml:"prev_row"`
	NextRow             string `yaml:"next_row"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Columns
		MoveColumnLeft:  "H",
		MoveColumnRight: "L",
		ToggleColumn:    "x",
		ShowAllColumns:  "X",
		ResetLayout:     "R",
		Reload:          "r",

		// Navigation
		PrevColumn:          "h",
		NextColumn:          "l",
		PrevRow:             "k",
		NextRow:             "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	pairs := []struct {
		value *string
		def   string
	}{
		{&k.MoveColumnLeft, d.MoveColumnLeft},
		{&k.MoveColumnRight, d.MoveColumnRight},
		{&k.ToggleColumn, d.ToggleColumn},
		{&k.ShowAllColumns, d.ShowAllColumns},
		{&k.ResetLayout, d.ResetLayout},
		{&k.Reload, d.Reload},
		{&k.PrevColumn, d.PrevColumn},
		{&k.NextColumn, d.NextColumn},
		{&k.PrevRow, d.PrevRow},
		{&k.NextRow, d.NextRow},
		{&k.ScrollViewportLeft, d.ScrollViewportLeft},
		{&k.ScrollViewportRight, d.ScrollViewportRight},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.def
		}
	}
}
