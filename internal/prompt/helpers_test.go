package prompt

import "github.com/thenoetrevino/roster/internal/config/colors"

func defaultSchemeForTest() colors.ColorScheme {
	return *colors.Default()
}
