package theme

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	Purple       = lipgloss.Color("#A855F7")
	BrightPurple = lipgloss.Color("#C084FC")

	// Neutrals
	White   = lipgloss.Color("#FFFFFF")
	Gray500 = lipgloss.Color("#737373")
	Gray700 = lipgloss.Color("#404040")
	Black   = lipgloss.Color("#111827")

	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")

	// Semantic colors
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

// Hex converts a #RRGGBB string into a terminal color, falling back to a
// neutral gray for anything else.
func Hex(s string) lipgloss.Color {
	if len(s) != 7 || s[0] != '#' {
		return DimGray
	}
	return lipgloss.Color(s)
}
