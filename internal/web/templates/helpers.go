package templates

//go:generate templ generate

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/domain"
	"github.com/emiliopalmerini/polyglot/internal/util"
)

const (
	PageTitle     = "Comprehensible Output Progress"
	Subtitle      = "Your multilingual learning journey"
	Encouragement = "Keep up the amazing work! 🎉 You're on your way to becoming a true polyglot! 🚀"

	// DashboardID is the element swapped by htmx after a selection.
	DashboardID = "dashboard"

	DistributionChartURL      = "/charts/distribution.svg"
	PhrasesByLanguageChartURL = "/charts/phrases-by-language.svg"
	SelectLanguageURL         = "/select/language"
	SelectPhraseURL           = "/select/phrase"
)

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func legendCount(count, total int) string {
	return formatInt(count) + " / " + util.FormatShare(count, total)
}

func hiddenSelection(p dashboard.PhraseCard) string {
	return "Selected: " + p.Source + " / " + p.Target + " (hidden by filter)"
}

// accentStyle exposes a #RRGGBB language color as the --accent custom
// property. Anything else yields no style.
func accentStyle(color string) templ.SafeCSS {
	if !domain.ValidColor(color) {
		return ""
	}
	return templ.SafeCSS("--accent: " + color + ";")
}
