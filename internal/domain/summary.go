package domain

import "sort"

// LanguageSummary is the per-language aggregate shown by the charts and the filter.
type LanguageSummary struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// ComputeLanguageSummaries groups records by target language in order of first
// appearance and resolves display metadata through the catalog.
func ComputeLanguageSummaries(records []PhraseRecord, catalog Catalog) []LanguageSummary {
	summaries := make([]LanguageSummary, 0)
	index := make(map[string]int)
	for _, r := range records {
		if i, ok := index[r.Language]; ok {
			summaries[i].Count++
			continue
		}
		meta := catalog.Lookup(r.Language)
		index[r.Language] = len(summaries)
		summaries = append(summaries, LanguageSummary{
			Code:  r.Language,
			Name:  meta.Name,
			Color: meta.Color,
			Count: 1,
		})
	}
	return summaries
}

// ComputeTotalCount returns the number of records.
func ComputeTotalCount(records []PhraseRecord) int {
	return len(records)
}

// RankLanguages returns a copy of summaries sorted by count, highest first.
// Equal counts keep their original relative order.
func RankLanguages(summaries []LanguageSummary) []LanguageSummary {
	ranked := make([]LanguageSummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// ComputeTopLanguage returns the summary with the highest count. The first one
// in summary order wins ties. ok is false only for an empty collection.
func ComputeTopLanguage(summaries []LanguageSummary) (top LanguageSummary, ok bool) {
	if len(summaries) == 0 {
		return LanguageSummary{}, false
	}
	return RankLanguages(summaries)[0], true
}
