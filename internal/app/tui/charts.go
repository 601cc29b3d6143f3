package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/components"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
)

const (
	minBarWidth = 10
	maxBarWidth = 50
)

// renderDistribution draws one magnitude bar per language followed by a
// strip showing each language's share of the total.
func renderDistribution(summaries []domain.LanguageSummary, width int) string {
	styles := theme.Default()
	title := styles.Subtitle.Render("Phrases by Language")

	if len(summaries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, styles.Muted.Render("No data"))
	}

	labelWidth, peak := 0, 0
	for _, s := range summaries {
		if w := lipgloss.Width(s.Name); w > labelWidth {
			labelWidth = w
		}
		if s.Count > peak {
			peak = s.Count
		}
	}

	barWidth := width - labelWidth - 8
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	lines := []string{title}
	segments := make([]components.Segment, 0, len(summaries))
	for _, s := range summaries {
		bar := components.Bar{Label: s.Name, Value: s.Count, Max: peak, Color: theme.Hex(s.Color)}
		lines = append(lines, bar.View(labelWidth, barWidth))
		segments = append(segments, components.Segment{Value: s.Count, Color: theme.Hex(s.Color)})
	}

	lines = append(lines, "", styles.Subtitle.Render("Language Distribution"),
		components.Strip(segments, labelWidth+1+barWidth))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
