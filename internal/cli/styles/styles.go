package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/roster/internal/config/colors"
)

var (
	// Table styles
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	BorderStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme.
// Until it is called every style is empty and renders plain text.
func Init(scheme colors.ColorScheme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Header)).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Border))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Delete))
}
