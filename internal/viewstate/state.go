// Package viewstate holds the transient dashboard selection: the language
// filter and the selected phrase.
package viewstate

import "github.com/emiliopalmerini/polyglot/internal/domain"

// State is owned by a single renderer session and is not safe for concurrent use.
type State struct {
	languageFilter string
	selected       *domain.PhraseRecord
}

// New returns the startup state: every language, nothing selected.
func New() *State {
	return &State{languageFilter: domain.AllLanguages}
}

// LanguageFilter returns domain.AllLanguages or a language code.
func (s *State) LanguageFilter() string {
	return s.languageFilter
}

// SelectedPhrase returns the selected record, or nil.
func (s *State) SelectedPhrase() *domain.PhraseRecord {
	return s.selected
}

// SelectLanguage changes the filter. The selected phrase is kept even when the
// new filter hides it.
func (s *State) SelectLanguage(code string) {
	s.languageFilter = code
}

// SelectPhrase selects p. Selecting the current phrase again leaves it selected.
func (s *State) SelectPhrase(p *domain.PhraseRecord) {
	s.selected = p
}

// IsSelected reports whether p is the selected record itself, not an equal copy.
func (s *State) IsSelected(p *domain.PhraseRecord) bool {
	return p != nil && s.selected == p
}
