package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		HeaderFg: "#D0D0D0",
		HeaderBg: "#3A3A3A",

		ProxyFg:    "#1C1C1C",
		ProxyBg:    "#D75FD7",
		DropTarget: "#5FD75F",

		RowHeader:  "#585858",
		Border:     "#5F87D7",
		SelectedBg: "#262626",

		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		ErrorFg: "#FF0000",
	}
}
