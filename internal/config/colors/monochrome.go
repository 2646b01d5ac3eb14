package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		HeaderFg: "#FFFFFF",
		HeaderBg: "#3A3A3A",

		ProxyFg:    "#121212",
		ProxyBg:    "#FFFFFF",
		DropTarget: "#FFFFFF",

		RowHeader:  "#585858",
		Border:     "#FFFFFF",
		SelectedBg: "#1C1C1C",

		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
