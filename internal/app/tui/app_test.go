package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/dataset"
	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/ports"
)

type MockMetricsExporter struct {
	Interactions []ports.Interaction
}

func (m *MockMetricsExporter) ExportInteraction(ctx context.Context, i *ports.Interaction) error {
	m.Interactions = append(m.Interactions, *i)
	return nil
}

func (m *MockMetricsExporter) Close(ctx context.Context) error {
	return nil
}

func newTestApp(t *testing.T) (*App, *MockMetricsExporter) {
	t.Helper()
	ds, err := dataset.Load()
	if err != nil {
		t.Fatalf("dataset.Load() error: %v", err)
	}
	exp := &MockMetricsExporter{}
	a := NewApp(dashboard.NewService(ds.Records, ds.Languages), exp)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return a, exp
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

func TestApp_InitialState(t *testing.T) {
	a, _ := newTestApp(t)

	if a.state.LanguageFilter() != domain.AllLanguages {
		t.Errorf("expected filter all, got %s", a.state.LanguageFilter())
	}
	if len(a.list.Items) != 14 {
		t.Errorf("expected 14 phrases, got %d", len(a.list.Items))
	}
}

func TestApp_FilterKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{name: "tab moves to first language", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, want: "nl"},
		{name: "l moves forward", keys: []tea.Msg{runes("l"), runes("l")}, want: "es"},
		{name: "right arrow moves forward", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, want: "nl"},
		{name: "shift+tab wraps to last", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftTab}}, want: "fr"},
		{name: "h moves back", keys: []tea.Msg{runes("h"), runes("h")}, want: "de"},
		{name: "full cycle returns to all", keys: []tea.Msg{runes("l"), runes("l"), runes("l"), runes("l"), runes("l"), runes("l")}, want: "all"},
		{name: "a resets", keys: []tea.Msg{runes("l"), runes("a")}, want: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			send(a, tt.keys...)
			if got := a.state.LanguageFilter(); got != tt.want {
				t.Errorf("expected filter %s, got %s", tt.want, got)
			}
		})
	}
}

func TestApp_FrenchFilterShowsTwoPhrases(t *testing.T) {
	a, exp := newTestApp(t)
	send(a, runes("h"))

	if len(a.list.Items) != 2 {
		t.Fatalf("expected 2 French phrases, got %d", len(a.list.Items))
	}
	if a.model.ExplorerTitle != "Phrase Explorer - French" {
		t.Errorf("unexpected title %q", a.model.ExplorerTitle)
	}
	if a.model.Metrics.TotalPhrases != 14 {
		t.Errorf("expected metrics to stay unfiltered, got %d", a.model.Metrics.TotalPhrases)
	}

	last := exp.Interactions[len(exp.Interactions)-1]
	if last.Kind != ports.InteractionSelectLanguage || last.Language != "fr" || last.Surface != ports.SurfaceTerminal {
		t.Errorf("unexpected interaction %+v", last)
	}
}

func TestApp_SelectPhraseWithKeys(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	sel := a.state.SelectedPhrase()
	if sel == nil || sel.Source != "mayor" {
		t.Fatalf("expected mayor to be selected, got %+v", sel)
	}
	if !a.list.Items[3].Selected {
		t.Error("expected the card to be highlighted")
	}

	send(a, runes("k"), tea.KeyMsg{Type: tea.KeySpace})
	if a.state.SelectedPhrase() == sel {
		t.Error("expected space to select the phrase under the cursor")
	}
}

func TestApp_MouseClickSelectsRow(t *testing.T) {
	a, _ := newTestApp(t)

	a.Update(tea.MouseMsg{X: 5, Y: a.listTop() + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	sel := a.state.SelectedPhrase()
	if sel == nil || sel != &a.service.Records()[2] {
		t.Errorf("expected row 2 to be selected, got %+v", sel)
	}

	a.Update(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.state.SelectedPhrase() != sel {
		t.Error("expected clicks outside the list to be ignored")
	}
}

func TestApp_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		a, _ := newTestApp(t)
		_, cmd := a.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestApp_View(t *testing.T) {
	a, _ := newTestApp(t)
	view := a.View()

	for _, want := range []string{
		"POLYGLOT", "Total Phrases", "Top Language", "Active Days",
		"Phrases by Language", "Language Distribution",
		"All Languages (14)", "Dutch (5)", "Phrase Explorer",
		"the program and the project",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestApp_ViewHiddenSelection(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter}, runes("h"))

	if !strings.Contains(a.View(), "(hidden by filter)") {
		t.Error("expected hidden selection notice")
	}
}

func TestApp_EmptyDataset(t *testing.T) {
	a := NewApp(dashboard.NewService(nil, domain.NewCatalog()), &MockMetricsExporter{})
	send(a, tea.WindowSizeMsg{Width: 80, Height: 40}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

	view := a.View()
	for _, want := range []string{"No data", "No phrases", "-"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if a.state.LanguageFilter() != domain.AllLanguages {
		t.Errorf("expected filter to stay all, got %s", a.state.LanguageFilter())
	}
}

func TestApp_HelpToggle(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, runes("?"))
	if !a.help.ShowAll {
		t.Error("expected full help")
	}
	if !strings.Contains(a.View(), "all languages") {
		t.Error("expected full help bindings in view")
	}
}

func TestApp_RejectedSelection(t *testing.T) {
	tests := []struct {
		name   string
		action func(a *App)
		want   string
	}{
		{"unknown phrase", func(a *App) { a.selectPhrase(99) }, "unknown phrase: index 99"},
		{"unknown language", func(a *App) { a.selectLanguage("xx") }, `unknown language: "xx"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, exp := newTestApp(t)
			recorded := len(exp.Interactions)

			tt.action(a)

			if !a.rejected {
				t.Error("expected the status to be marked as rejected")
			}
			if a.status != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, a.status)
			}
			if !strings.Contains(a.View(), tt.want) {
				t.Error("expected the rejection in the footer")
			}
			if a.state.LanguageFilter() != domain.AllLanguages || a.state.SelectedPhrase() != nil {
				t.Error("expected the view state to be unchanged")
			}
			if len(exp.Interactions) != recorded {
				t.Error("expected no interaction for a rejected selection")
			}

			a.selectPhrase(0)
			if a.status != "" {
				t.Errorf("expected a valid selection to clear the status, got %q", a.status)
			}
		})
	}
}
