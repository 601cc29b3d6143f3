package ports

import "context"

// MetricsExporter exports dashboard interaction metrics to an external observability system.
type MetricsExporter interface {
	// ExportInteraction records a single user interaction.
	ExportInteraction(ctx context.Context, i *Interaction) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// InteractionKind names the user event being recorded.
type InteractionKind string

const (
	InteractionView           InteractionKind = "view"
	InteractionSelectLanguage InteractionKind = "select_language"
	InteractionSelectPhrase   InteractionKind = "select_phrase"
)

// Surface names the renderer that produced an interaction.
const (
	SurfaceWeb      = "web"
	SurfaceTerminal = "terminal"
)

// Interaction describes one dashboard event.
type Interaction struct {
	Kind    InteractionKind
	Surface string
	// Language is the filter value for views and filter changes, or the
	// language of the clicked phrase.
	Language string
}
