package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/polyglot/internal/ports"
)

const (
	serviceName    = "polyglot"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when the configuration turns exporting off.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// Exporter exports dashboard interaction metrics to an OTEL Collector.
type Exporter struct {
	provider           *sdkmetric.MeterProvider
	views              metric.Int64Counter
	languageSelections metric.Int64Counter
	phraseSelections   metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	views, err := meter.Int64Counter(
		"polyglot_dashboard_views_total",
		metric.WithDescription("Dashboard renders"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating views counter: %w", err)
	}

	languageSelections, err := meter.Int64Counter(
		"polyglot_language_selections_total",
		metric.WithDescription("Language filter changes"),
		metric.WithUnit("{selection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating language selections counter: %w", err)
	}

	phraseSelections, err := meter.Int64Counter(
		"polyglot_phrase_selections_total",
		metric.WithDescription("Phrase card clicks"),
		metric.WithUnit("{selection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating phrase selections counter: %w", err)
	}

	return &Exporter{
		provider:           provider,
		views:              views,
		languageSelections: languageSelections,
		phraseSelections:   phraseSelections,
	}, nil
}

// ExportInteraction records one dashboard interaction.
func (e *Exporter) ExportInteraction(ctx context.Context, i *ports.Interaction) error {
	opt := metric.WithAttributes(
		attribute.String("surface", i.Surface),
		attribute.String("language", i.Language),
	)

	switch i.Kind {
	case ports.InteractionView:
		e.views.Add(ctx, 1, opt)
	case ports.InteractionSelectLanguage:
		e.languageSelections.Add(ctx, 1, opt)
	case ports.InteractionSelectPhrase:
		e.phraseSelections.Add(ctx, 1, opt)
	default:
		return fmt.Errorf("unknown interaction kind %q", i.Kind)
	}
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
