package dashboard

import "github.com/emiliopalmerini/polyglot/internal/domain"

// ActiveDays is shown as-is on the dashboard; no usage tracking feeds it.
const ActiveDays = 3

// NoTopLanguage is displayed when there is nothing to rank.
const NoTopLanguage = "-"

// Metrics are the four summary cards.
type Metrics struct {
	TotalPhrases  int    `json:"total_phrases"`
	LanguageCount int    `json:"language_count"`
	TopLanguage   string `json:"top_language"`
	ActiveDays    int    `json:"active_days"`
}

// FilterOption is one language filter control.
type FilterOption struct {
	Value  string
	Label  string
	Color  string
	Count  int
	Active bool
}

// PhraseCard is one entry of the phrase explorer. Index points into the data
// source and identifies the record for selection events.
type PhraseCard struct {
	Index        int
	Source       string
	Target       string
	LanguageName string
	Badge        string
	Color        string
	Selected     bool
}

// Model is everything a renderer needs to draw the dashboard.
type Model struct {
	Metrics        Metrics
	Summaries      []domain.LanguageSummary
	Filters        []FilterOption
	LanguageFilter string
	ExplorerTitle  string
	Phrases        []PhraseCard
	// SelectedIndex is -1 when no phrase is selected.
	SelectedIndex   int
	SelectedVisible bool
	// Selected is set whenever a phrase is selected, visible or not.
	Selected *PhraseCard
}

// Stats is the machine-readable summary served by the API and the CLI.
type Stats struct {
	Total       int                      `json:"total"`
	Languages   int                      `json:"languages"`
	TopLanguage string                   `json:"top_language"`
	ActiveDays  int                      `json:"active_days"`
	Summaries   []domain.LanguageSummary `json:"summaries"`
}
