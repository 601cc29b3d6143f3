package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
)

// MetricCard displays a single dashboard metric
type MetricCard struct {
	Icon  string
	Title string
	Value string
}

func (m MetricCard) View(width int) string {
	styles := theme.Default()

	card := styles.Card.Width(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Gray500).
		Render(m.Icon + " " + m.Title)

	value := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.White).
		Render(m.Value)

	return card.Render(lipgloss.JoinVertical(lipgloss.Left, title, value))
}

// RenderMetricCards lays the cards out in one row, or two rows on narrow terminals
func RenderMetricCards(cards []MetricCard, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	if totalWidth <= 0 {
		totalWidth = 80
	}

	perRow := len(cards)
	cardWidth := totalWidth/perRow - 2
	if cardWidth < 20 {
		perRow = 2
		cardWidth = totalWidth/perRow - 2
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		var rowCards []string
		for _, c := range cards[i:end] {
			rowCards = append(rowCards, c.View(cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
