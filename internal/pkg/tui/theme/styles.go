package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all shared TUI styles
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive elements
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style

	// Layout
	Card      lipgloss.Style
	Separator lipgloss.Style

	// Phrase entries
	Badge  lipgloss.Style
	Source lipgloss.Style
	Target lipgloss.Style

	// Status indicators
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Subtitle: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Cursor: lipgloss.NewStyle().
			Foreground(BrightPurple).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),

		// Active filter: inverted for a toggle look
		Active: lipgloss.NewStyle().
			Foreground(Black).
			Background(BrightPurple).
			Bold(true).
			Padding(0, 1),

		Inactive: lipgloss.NewStyle().
			Foreground(DimGray).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 2),

		Separator: lipgloss.NewStyle().
			Foreground(Gray700),

		Badge: lipgloss.NewStyle().
			Foreground(Black).
			Bold(true).
			Padding(0, 1),

		Source: lipgloss.NewStyle().
			Foreground(White),

		Target: lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Error: lipgloss.NewStyle().
			Foreground(Error),
	}
}
