package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
)

// PhraseList is a scrollable list of phrase cards with a cursor.
type PhraseList struct {
	Items  []dashboard.PhraseCard
	Cursor int
	// Height is the number of visible rows; zero shows everything.
	Height int
	offset int
	styles *theme.Styles
}

// NewPhraseList creates an empty list
func NewPhraseList() PhraseList {
	return PhraseList{styles: theme.Default()}
}

// SetItems replaces the list contents, keeping the cursor in range.
func (l *PhraseList) SetItems(items []dashboard.PhraseCard) {
	l.Items = items
	l.clamp()
}

// SetHeight sets the number of visible rows.
func (l *PhraseList) SetHeight(h int) {
	l.Height = h
	l.clamp()
}

func (l *PhraseList) MoveUp() {
	l.Cursor--
	l.clamp()
}

func (l *PhraseList) MoveDown() {
	l.Cursor++
	l.clamp()
}

// Current returns the card under the cursor.
func (l PhraseList) Current() (dashboard.PhraseCard, bool) {
	if len(l.Items) == 0 {
		return dashboard.PhraseCard{}, false
	}
	return l.Items[l.Cursor], true
}

// At maps a visible row to its card and moves the cursor there.
func (l *PhraseList) At(row int) (dashboard.PhraseCard, bool) {
	i := l.offset + row
	if row < 0 || i >= len(l.Items) || (l.Height > 0 && row >= l.Height) {
		return dashboard.PhraseCard{}, false
	}
	l.Cursor = i
	return l.Items[i], true
}

func (l *PhraseList) clamp() {
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}

	if l.Height <= 0 {
		l.offset = 0
		return
	}
	if l.Cursor < l.offset {
		l.offset = l.Cursor
	}
	if l.Cursor >= l.offset+l.Height {
		l.offset = l.Cursor - l.Height + 1
	}
	if last := len(l.Items) - l.Height; l.offset > last {
		l.offset = last
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible rows, one phrase per line.
func (l PhraseList) View() string {
	if len(l.Items) == 0 {
		return l.styles.Muted.Render("  No phrases")
	}

	end := len(l.Items)
	if l.Height > 0 && l.offset+l.Height < end {
		end = l.offset + l.Height
	}

	rows := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		rows = append(rows, l.row(i))
	}
	return strings.Join(rows, "\n")
}

func (l PhraseList) row(i int) string {
	p := l.Items[i]

	indicator := " "
	if i == l.Cursor {
		indicator = l.styles.Cursor.Render(">")
	}

	mark := l.styles.Muted.Render("○")
	if p.Selected {
		mark = l.styles.Selected.Render("●")
	}

	badge := l.styles.Badge.Background(theme.Hex(p.Color)).Render(p.Badge)

	source := l.styles.Source.Render(p.Source)
	if i == l.Cursor {
		source = l.styles.Cursor.Render(p.Source)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		indicator, " ", mark, " ", badge, " ", source,
		l.styles.Muted.Render(" → "), l.styles.Target.Render(p.Target),
	)
}
