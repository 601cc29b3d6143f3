package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// Bar is a horizontal magnitude bar scaled against Max.
type Bar struct {
	Label string
	Value int
	Max   int
	Color lipgloss.Color
}

// View renders the label padded to labelWidth, the bar in width cells, and the value.
func (b Bar) View(labelWidth, width int) string {
	styles := theme.Default()

	filled := 0
	if b.Max > 0 && width > 0 {
		filled = b.Value * width / b.Max
		if b.Value > 0 && filled == 0 {
			filled = 1
		}
	}

	label := styles.Body.Render(fmt.Sprintf("%-*s", labelWidth, b.Label))
	bar := lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat(barFull, filled)) +
		styles.Muted.Render(strings.Repeat(barEmpty, width-filled))
	value := styles.Bold.Render(fmt.Sprintf("%d", b.Value))

	return label + " " + bar + " " + value
}
