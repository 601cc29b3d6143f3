package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/components"
	"github.com/emiliopalmerini/polyglot/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/polyglot/internal/ports"
	"github.com/emiliopalmerini/polyglot/internal/viewstate"
)

const (
	defaultWidth  = 80
	minListHeight = 3
)

// App is the terminal dashboard. It owns a single view state for the
// lifetime of the program.
type App struct {
	service  *dashboard.Service
	exporter ports.MetricsExporter
	state    *viewstate.State
	model    dashboard.Model
	list     components.PhraseList
	keys     keyMap
	help     help.Model
	styles   *theme.Styles
	status   string
	rejected bool
	width    int
	height   int
}

// NewApp creates a new dashboard application
func NewApp(service *dashboard.Service, exporter ports.MetricsExporter) *App {
	a := &App{
		service:  service,
		exporter: exporter,
		state:    viewstate.New(),
		list:     components.NewPhraseList(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   theme.Default(),
	}
	a.refresh()
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	a.record(ports.InteractionView, a.state.LanguageFilter())
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.layout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextFilter):
			a.cycleFilter(1)
		case key.Matches(msg, a.keys.PrevFilter):
			a.cycleFilter(-1)
		case key.Matches(msg, a.keys.AllFilter):
			a.selectLanguage(a.model.Filters[0].Value)
		case key.Matches(msg, a.keys.Up):
			a.list.MoveUp()
		case key.Matches(msg, a.keys.Down):
			a.list.MoveDown()
		case key.Matches(msg, a.keys.Select):
			if card, ok := a.list.Current(); ok {
				a.selectPhrase(card.Index)
			}
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.layout()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if card, ok := a.list.At(msg.Y - a.listTop()); ok {
				a.selectPhrase(card.Index)
			}
		}
	}

	return a, nil
}

func (a *App) cycleFilter(step int) {
	filters := a.model.Filters
	current := 0
	for i, f := range filters {
		if f.Active {
			current = i
			break
		}
	}
	next := (current + step + len(filters)) % len(filters)
	a.selectLanguage(filters[next].Value)
}

func (a *App) selectLanguage(code string) {
	if err := a.service.SelectLanguage(a.state, code); err != nil {
		a.reject(err)
		return
	}
	a.status = ""
	a.list.Cursor = 0
	a.refresh()
	a.record(ports.InteractionSelectLanguage, code)
}

func (a *App) selectPhrase(index int) {
	if err := a.service.SelectPhrase(a.state, index); err != nil {
		a.reject(err)
		return
	}
	a.status = ""
	a.refresh()
	if p, ok := a.service.Phrase(index); ok {
		a.record(ports.InteractionSelectPhrase, p.Language)
	}
}

// reject reports a selection the service refused. The view state is left
// as it was.
func (a *App) reject(err error) {
	a.status = err.Error()
	a.rejected = true
}

func (a *App) refresh() {
	a.model = a.service.Build(a.state)
	a.list.SetItems(a.model.Phrases)
	a.layout()
}

// layout sizes the phrase list to the space left below the header sections.
func (a *App) layout() {
	if a.height == 0 {
		return
	}
	h := a.height - a.listTop() - lipgloss.Height(a.footer())
	if h < minListHeight {
		h = minListHeight
	}
	a.list.SetHeight(h)
}

func (a *App) record(kind ports.InteractionKind, language string) {
	err := a.exporter.ExportInteraction(context.Background(), &ports.Interaction{
		Kind:     kind,
		Surface:  ports.SurfaceTerminal,
		Language: language,
	})
	if err != nil {
		a.status = "metrics: " + err.Error()
		a.rejected = false
	}
}

// View implements tea.Model
func (a *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.top(), a.list.View(), a.footer())
}

// listTop is the screen row of the first phrase.
func (a *App) listTop() int {
	return lipgloss.Height(a.top())
}

func (a *App) top() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	sep := a.styles.Separator.Render(strings.Repeat("─", width))

	m := a.model.Metrics
	cards := RenderMetricCards([]MetricCard{
		{Icon: "▤", Title: "Total Phrases", Value: strconv.Itoa(m.TotalPhrases)},
		{Icon: "↗", Title: "Languages", Value: strconv.Itoa(m.LanguageCount)},
		{Icon: "ϟ", Title: "Top Language", Value: m.TopLanguage},
		{Icon: "▦", Title: "Active Days", Value: strconv.Itoa(m.ActiveDays)},
	}, width)

	sections := []string{
		a.renderHeader(),
		sep,
		cards,
		"",
		renderDistribution(a.model.Summaries, width),
		"",
		NewFilterBar(a.model.Filters).View(),
		"",
		a.styles.Subtitle.Render(a.model.ExplorerTitle),
	}
	if sel := a.model.Selected; sel != nil && !a.model.SelectedVisible {
		sections = append(sections, a.styles.Muted.Render("Selected: "+sel.Source+" → "+sel.Target+" (hidden by filter)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) footer() string {
	lines := []string{""}
	if a.status != "" {
		style := a.styles.Warning
		if a.rejected {
			style = a.styles.Error
		}
		lines = append(lines, style.Render(a.status))
	}
	lines = append(lines, a.help.View(a.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("POLYGLOT")
	tagline := a.styles.Muted.Render("Comprehensible Output Progress")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tagline)
}
