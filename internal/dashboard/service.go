// Package dashboard derives the renderer-neutral dashboard model from the
// phrase records and a view state, and validates selection events.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/viewstate"
)

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownPhrase   = errors.New("unknown phrase")
)

const allLanguagesLabel = "All Languages"

// Service is safe for concurrent use; it never mutates its inputs.
type Service struct {
	records   []domain.PhraseRecord
	catalog   domain.Catalog
	summaries []domain.LanguageSummary
}

// NewService computes the language summaries once; records are immutable.
func NewService(records []domain.PhraseRecord, catalog domain.Catalog) *Service {
	return &Service{
		records:   records,
		catalog:   catalog,
		summaries: domain.ComputeLanguageSummaries(records, catalog),
	}
}

// Records returns the data source. Callers must not modify it.
func (s *Service) Records() []domain.PhraseRecord {
	return s.records
}

// Summaries returns a copy of the per-language summaries in source order.
func (s *Service) Summaries() []domain.LanguageSummary {
	out := make([]domain.LanguageSummary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

// Metrics computes the summary card values.
func (s *Service) Metrics() Metrics {
	m := Metrics{
		TotalPhrases:  domain.ComputeTotalCount(s.records),
		LanguageCount: len(s.summaries),
		TopLanguage:   NoTopLanguage,
		ActiveDays:    ActiveDays,
	}
	if top, ok := domain.ComputeTopLanguage(s.summaries); ok {
		m.TopLanguage = top.Name
	}
	return m
}

// Stats returns the metrics together with the per-language summaries.
func (s *Service) Stats() Stats {
	m := s.Metrics()
	return Stats{
		Total:       m.TotalPhrases,
		Languages:   m.LanguageCount,
		TopLanguage: m.TopLanguage,
		ActiveDays:  m.ActiveDays,
		Summaries:   s.Summaries(),
	}
}

// Phrase resolves an index into a reference to the record in the data source.
func (s *Service) Phrase(index int) (*domain.PhraseRecord, bool) {
	if index < 0 || index >= len(s.records) {
		return nil, false
	}
	return &s.records[index], true
}

// SelectLanguage applies a filter event. Only domain.AllLanguages and codes
// offered by the filter controls are accepted.
func (s *Service) SelectLanguage(state *viewstate.State, code string) error {
	if code != domain.AllLanguages && !s.hasSummary(code) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	state.SelectLanguage(code)
	return nil
}

// SelectPhrase applies a phrase click event.
func (s *Service) SelectPhrase(state *viewstate.State, index int) error {
	p, ok := s.Phrase(index)
	if !ok {
		return fmt.Errorf("%w: index %d", ErrUnknownPhrase, index)
	}
	state.SelectPhrase(p)
	return nil
}

// Build derives the dashboard model for state.
func (s *Service) Build(state *viewstate.State) Model {
	filter := state.LanguageFilter()
	m := Model{
		Metrics:        s.Metrics(),
		Summaries:      s.Summaries(),
		Filters:        s.filterOptions(filter),
		LanguageFilter: filter,
		ExplorerTitle:  s.explorerTitle(filter),
		SelectedIndex:  -1,
	}

	for i := range s.records {
		if state.IsSelected(&s.records[i]) {
			m.SelectedIndex = i
			sel := s.card(i)
			sel.Selected = true
			m.Selected = &sel
			break
		}
	}

	indexes := domain.FilterIndexes(s.records, filter)
	m.Phrases = make([]PhraseCard, 0, len(indexes))
	for _, i := range indexes {
		card := s.card(i)
		if i == m.SelectedIndex {
			card.Selected = true
			m.SelectedVisible = true
		}
		m.Phrases = append(m.Phrases, card)
	}
	return m
}

func (s *Service) card(i int) PhraseCard {
	r := s.records[i]
	meta := s.catalog.Lookup(r.Language)
	return PhraseCard{
		Index:        i,
		Source:       r.Source,
		Target:       r.Target,
		LanguageName: meta.Name,
		Badge:        strings.ToUpper(r.Language),
		Color:        meta.Color,
	}
}

func (s *Service) filterOptions(active string) []FilterOption {
	opts := make([]FilterOption, 0, len(s.summaries)+1)
	opts = append(opts, FilterOption{
		Value:  domain.AllLanguages,
		Label:  allLanguagesLabel,
		Count:  domain.ComputeTotalCount(s.records),
		Active: active == domain.AllLanguages,
	})
	for _, sum := range s.summaries {
		opts = append(opts, FilterOption{
			Value:  sum.Code,
			Label:  sum.Name,
			Color:  sum.Color,
			Count:  sum.Count,
			Active: active == sum.Code,
		})
	}
	return opts
}

func (s *Service) explorerTitle(filter string) string {
	if filter == domain.AllLanguages {
		return "Phrase Explorer"
	}
	return "Phrase Explorer - " + s.catalog.Lookup(filter).Name
}

func (s *Service) hasSummary(code string) bool {
	for _, sum := range s.summaries {
		if sum.Code == code {
			return true
		}
	}
	return false
}
