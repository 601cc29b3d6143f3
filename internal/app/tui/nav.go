package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
)

// FilterBar renders the language filters as toggle-style tabs
type FilterBar struct {
	Options []dashboard.FilterOption
	styles  *theme.Styles
}

// NewFilterBar creates a new filter bar
func NewFilterBar(options []dashboard.FilterOption) FilterBar {
	return FilterBar{
		Options: options,
		styles:  theme.Default(),
	}
}

func (f FilterBar) View() string {
	items := make([]string, 0, len(f.Options))

	for _, opt := range f.Options {
		label := fmt.Sprintf("%s (%d)", opt.Label, opt.Count)
		if opt.Active {
			style := f.styles.Active
			if opt.Color != "" {
				style = style.Background(theme.Hex(opt.Color))
			}
			items = append(items, style.Render(label))
			continue
		}

		dot := " "
		if opt.Color != "" {
			dot = lipgloss.NewStyle().Foreground(theme.Hex(opt.Color)).Render("●")
		}
		items = append(items, dot+f.styles.Inactive.Render(label))
	}

	sep := f.styles.Separator.Render(" / ")
	return strings.Join(items, sep)
}
