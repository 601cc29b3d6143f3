package dataset

import (
	"testing"

	"github.com/emiliopalmerini/polyglot/internal/domain"
)

func TestLoad_Seed(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if n := domain.ComputeTotalCount(ds.Records); n != 14 {
		t.Errorf("expected 14 records, got %d", n)
	}

	want := map[string]int{"nl": 5, "es": 3, "it": 3, "fr": 2, "de": 1}
	summaries := domain.ComputeLanguageSummaries(ds.Records, ds.Languages)
	if len(summaries) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(summaries))
	}
	for _, s := range summaries {
		if s.Count != want[s.Code] {
			t.Errorf("%s: expected %d, got %d", s.Code, want[s.Code], s.Count)
		}
	}

	top, ok := domain.ComputeTopLanguage(summaries)
	if !ok || top.Code != "nl" || top.Count != 5 {
		t.Errorf("expected nl with 5, got %+v (ok=%v)", top, ok)
	}

	if unknown := ds.UnknownCodes(); len(unknown) != 0 {
		t.Errorf("expected every seed code to have metadata, got %v", unknown)
	}
}

func TestLoad_PreservesOrderAndText(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	first := ds.Records[0]
	if first.Source != "the program and the project" || first.Language != "nl" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if ds.Records[5].Target != "la machine à café" {
		t.Errorf("expected accented target to survive decoding, got %q", ds.Records[5].Target)
	}
	if ds.Records[9].Target != "Venerdì" {
		t.Errorf("unexpected record 9: %+v", ds.Records[9])
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantErr     bool
		wantRecords int
		wantUnknown int
	}{
		{
			name:        "empty document",
			doc:         "languages: []\nphrases: []\n",
			wantRecords: 0,
		},
		{
			name: "unknown code is not an error",
			doc: `languages:
  - {code: nl, name: Dutch, color: "#FF6B6B"}
phrases:
  - {source: thanks, target: obrigado, language: pt}
`,
			wantRecords: 1,
			wantUnknown: 1,
		},
		{
			name: "invalid color",
			doc: `languages:
  - {code: nl, name: Dutch, color: red}
phrases: []
`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			doc:     "languages: []\nphrases: []\nextra: 1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse([]byte(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ds.Records) != tt.wantRecords {
				t.Errorf("expected %d records, got %d", tt.wantRecords, len(ds.Records))
			}
			if ds.Records == nil {
				t.Error("expected non-nil records")
			}
			if n := len(ds.UnknownCodes()); n != tt.wantUnknown {
				t.Errorf("expected %d unknown codes, got %d", tt.wantUnknown, n)
			}
		})
	}
}
