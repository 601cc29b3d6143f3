package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/emiliopalmerini/polyglot/internal/domain"
)

func testSummaries() []domain.LanguageSummary {
	return []domain.LanguageSummary{
		{Code: "nl", Name: "Dutch", Color: "#FF6B6B", Count: 5},
		{Code: "es", Name: "Spanish", Color: "#4ECDC4", Count: 3},
		{Code: "it", Name: "Italian", Color: "#45B7D1", Count: 3},
		{Code: "de", Name: "German", Color: "#FFEAA7", Count: 1},
		{Code: "fr", Name: "French", Color: "#96CEB4", Count: 2},
	}
}

func TestPie_RendersSVG(t *testing.T) {
	out, err := Pie(testSummaries(), Size{})
	if err != nil {
		t.Fatalf("Pie() error: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("expected SVG output, got %q", truncate(svg))
	}
	if !strings.Contains(svg, "Dutch: 5") {
		t.Error("expected slice label for Dutch")
	}
}

func TestBar_RendersSVG(t *testing.T) {
	out, err := Bar(testSummaries(), Size{Width: 200})
	if err != nil {
		t.Fatalf("Bar() error: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("expected SVG output, got %q", truncate(svg))
	}
	if !strings.Contains(svg, "Spanish") {
		t.Error("expected bar label for Spanish")
	}
}

func TestPie_SliceColors(t *testing.T) {
	tests := []struct {
		name      string
		summaries []domain.LanguageSummary
	}{
		{"single language", testSummaries()[:1]},
		{"two languages", testSummaries()[:2]},
		{"all languages", testSummaries()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Pie(tt.summaries, Size{})
			if err != nil {
				t.Fatalf("Pie() error: %v", err)
			}
			svg := string(out)
			for _, s := range tt.summaries {
				want := "fill:" + Color(s.Color).String()
				if !strings.Contains(svg, want) {
					t.Errorf("expected %s slice to use %q", s.Code, want)
				}
			}
		})
	}
}

func TestPie_SingleLanguageColor(t *testing.T) {
	out, err := Pie([]domain.LanguageSummary{{Code: "nl", Name: "Dutch", Color: "#FF6B6B", Count: 5}}, Size{})
	if err != nil {
		t.Fatalf("Pie() error: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "fill:rgba(255,107,107,1.0)") {
		t.Error("expected the single slice to use the language color")
	}
	if strings.Contains(svg, "fill:rgba(106,195,203,1.0)") {
		t.Error("expected no default palette color")
	}
}

func TestBar_BarColors(t *testing.T) {
	out, err := Bar(testSummaries(), Size{})
	if err != nil {
		t.Fatalf("Bar() error: %v", err)
	}
	svg := string(out)
	for _, s := range testSummaries() {
		if want := "fill:" + Color(s.Color).String(); !strings.Contains(svg, want) {
			t.Errorf("expected %s bar to use %q", s.Code, want)
		}
	}
}

func TestCharts_NoData(t *testing.T) {
	if _, err := Pie(nil, Size{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Pie: expected ErrNoData, got %v", err)
	}
	if _, err := Bar([]domain.LanguageSummary{}, Size{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Bar: expected ErrNoData, got %v", err)
	}
}

func TestColor(t *testing.T) {
	c := Color("#FF6B6B")
	if c.R != 0xFF || c.G != 0x6B || c.B != 0x6B {
		t.Errorf("unexpected color %+v", c)
	}

	fallback := Color("red")
	if fallback.R != 0x99 || fallback.G != 0x99 || fallback.B != 0x99 {
		t.Errorf("expected fallback gray, got %+v", fallback)
	}
}

func truncate(s string) string {
	if len(s) > 80 {
		return s[:80]
	}
	return s
}
