package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: "#957FB8", // oniViolet

		HeaderFg: "#DCD7BA", // fujiWhite
		HeaderBg: "#2A2A37", // sumiInk4

		ProxyFg:    "#1F1F28", // sumiInk1
		ProxyBg:    "#7E9CD8", // crystalBlue
		DropTarget: "#98BB6C", // springGreen

		RowHeader:  "#727169", // fujiGray
		Border:     "#54546D", // sumiInk6
		SelectedBg: "#223249", // waveBlue1

		Subtle: "#727169",
		Normal: "#DCD7BA",

		InfoFg:  "#7FB4CA", // springBlue
		ErrorFg: "#E82424", // samuraiRed
	}
}
