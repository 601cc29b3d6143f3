package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one share of a proportion strip.
type Segment struct {
	Value int
	Color lipgloss.Color
}

// Widths splits width cells across segments in proportion to their values.
// Rounding leftovers go to the largest segments first.
func Widths(segments []Segment, width int) []int {
	out := make([]int, len(segments))
	total := 0
	for _, s := range segments {
		total += s.Value
	}
	if total == 0 || width <= 0 {
		return out
	}

	used := 0
	for i, s := range segments {
		out[i] = s.Value * width / total
		used += out[i]
	}
	for used < width {
		best := -1
		for i, s := range segments {
			if s.Value == 0 {
				continue
			}
			if best == -1 || s.Value*width-out[i]*total > segments[best].Value*width-out[best]*total {
				best = i
			}
		}
		out[best]++
		used++
	}
	return out
}

// Strip renders segments side by side as one line of width cells.
func Strip(segments []Segment, width int) string {
	var b strings.Builder
	for i, w := range Widths(segments, width) {
		if w == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(segments[i].Color).Render(strings.Repeat(barFull, w)))
	}
	return b.String()
}
