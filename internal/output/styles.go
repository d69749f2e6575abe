package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used by the
// CLI. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: library names, paths, types.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and success summaries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for optional entries and skip notices.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failures.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (library names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and action verbs.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (tree connectors, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSuccess styles success lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleOptional styles optional file markers.
	StyleOptional = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleFailed styles failure lines.
	StyleFailed = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := StyleFailed.Render("✘")
	return cross + " " + msg
}
