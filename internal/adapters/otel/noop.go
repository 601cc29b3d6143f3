package otel

import (
	"context"

	"github.com/emiliopalmerini/polyglot/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

// ExportInteraction discards the interaction.
func (e *NoOpExporter) ExportInteraction(ctx context.Context, i *ports.Interaction) error {
	return nil
}

// Close is a no-op.
func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
