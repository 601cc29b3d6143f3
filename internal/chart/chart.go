// Package chart renders the language distribution charts as SVG.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/polyglot/internal/domain"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("chart: no data")

const (
	DefaultWidth  = 480
	DefaultHeight = 300

	barWidth   = 56
	barSpacing = 24
)

// Size is the rendered canvas size in pixels. Zero values use the defaults.
type Size struct {
	Width  int
	Height int
}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s
}

// Pie renders the share of phrases per language, one slice per summary.
func Pie(summaries []domain.LanguageSummary, size Size) ([]byte, error) {
	if len(summaries) == 0 {
		return nil, ErrNoData
	}
	size = size.orDefault()

	values := make([]gochart.Value, 0, len(summaries))
	for _, s := range summaries {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s: %d", s.Name, s.Count),
			Value: float64(s.Count),
			Style: gochart.Style{
				FillColor:   Color(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := gochart.PieChart{
		Width:        size.Width,
		Height:       size.Height,
		Values:       values,
		ColorPalette: languagePalette{ColorPalette: gochart.AlternateColorPalette, summaries: summaries},
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// languagePalette colours series by language. A single-value pie is drawn
// as a circle from the palette, skipping the per-value style.
type languagePalette struct {
	gochart.ColorPalette
	summaries []domain.LanguageSummary
}

func (p languagePalette) GetSeriesColor(index int) drawing.Color {
	if index < 0 || index >= len(p.summaries) {
		return Color(domain.FallbackColor)
	}
	return Color(p.summaries[index].Color)
}

// Bar renders phrase counts per language as vertical bars. The Y axis always
// starts at zero.
func Bar(summaries []domain.LanguageSummary, size Size) ([]byte, error) {
	if len(summaries) == 0 {
		return nil, ErrNoData
	}
	size = size.orDefault()
	if minWidth := len(summaries)*(barWidth+barSpacing) + 120; size.Width < minWidth {
		size.Width = minWidth
	}

	maxCount := 0
	bars := make([]gochart.Value, 0, len(summaries))
	for _, s := range summaries {
		if s.Count > maxCount {
			maxCount = s.Count
		}
		bars = append(bars, gochart.Value{
			Label: s.Name,
			Value: float64(s.Count),
			Style: gochart.Style{
				FillColor:   Color(s.Color),
				StrokeColor: Color(s.Color),
				StrokeWidth: 1,
			},
		})
	}

	ticks := make([]gochart.Tick, 0, maxCount+1)
	for i := 0; i <= maxCount; i++ {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}

	bar := gochart.BarChart{
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			Ticks: ticks,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Color converts a #RRGGBB string into a drawing color. Anything else maps to
// the fallback language color.
func Color(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		hex = strings.TrimPrefix(domain.FallbackColor, "#")
	}
	return drawing.ColorFromHex(hex)
}
