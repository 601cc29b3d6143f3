package domain

// FilterByLanguage returns the records whose target language equals filter,
// preserving order. AllLanguages returns records itself. The input is never
// modified; no match yields an empty, non-nil slice.
func FilterByLanguage(records []PhraseRecord, filter string) []PhraseRecord {
	if filter == AllLanguages {
		return records
	}
	out := make([]PhraseRecord, 0)
	for _, r := range records {
		if r.Language == filter {
			out = append(out, r)
		}
	}
	return out
}

// FilterIndexes is FilterByLanguage expressed as positions into records, for
// callers that need to keep a reference to the original element.
func FilterIndexes(records []PhraseRecord, filter string) []int {
	out := make([]int, 0, len(records))
	for i, r := range records {
		if filter == AllLanguages || r.Language == filter {
			out = append(out, i)
		}
	}
	return out
}
