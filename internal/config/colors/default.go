package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Delete: "#FF5F5F",

		Header: "#D75FD7",
		Border: "#5F87D7",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
