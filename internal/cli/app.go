package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/adapters/otel"
	"github.com/emiliopalmerini/polyglot/internal/app"
	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/dataset"
	"github.com/emiliopalmerini/polyglot/internal/log"
	"github.com/emiliopalmerini/polyglot/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config   *app.Config
	Log      *zap.Logger
	Dataset  *dataset.Dataset
	Service  *dashboard.Service
	Exporter ports.MetricsExporter
}

// NewAppContext loads configuration and the phrase data and wires the
// dashboard service. withMetrics enables the OTEL exporter when configured.
func NewAppContext(ctx context.Context, withMetrics bool) (*AppContext, error) {
	cfg, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := log.New(level, cfg.LogDevelopment)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	ds, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load phrases: %w", err)
	}
	if unknown := ds.UnknownCodes(); len(unknown) > 0 {
		logger.Warn("phrases use languages without metadata, using fallback labels",
			zap.Strings("codes", unknown))
	}
	logger.Debug("phrases loaded",
		zap.Int("phrases", len(ds.Records)),
		zap.Int("languages", len(ds.Languages.Languages())))

	a := &AppContext{
		Config:   cfg,
		Log:      logger,
		Dataset:  ds,
		Service:  dashboard.NewService(ds.Records, ds.Languages),
		Exporter: otel.NewNoOpExporter(),
	}
	if withMetrics {
		a.Exporter = newExporter(ctx, cfg, logger)
	}
	return a, nil
}

func newExporter(ctx context.Context, cfg *app.Config, logger *zap.Logger) ports.MetricsExporter {
	exp, err := otel.NewExporter(ctx, cfg.OTEL())
	if errors.Is(err, otel.ErrDisabled) {
		logger.Debug("metrics export disabled")
		return otel.NewNoOpExporter()
	}
	if err != nil {
		logger.Warn("metrics export unavailable, continuing without it", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	logger.Info("exporting metrics", zap.String("endpoint", cfg.OTELEndpoint))
	return exp
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Exporter != nil {
		errs = append(errs, a.Exporter.Close(ctx))
	}
	if a.Log != nil {
		// Syncing stderr fails on some platforms; nothing useful to do about it.
		_ = a.Log.Sync()
	}
	return errors.Join(errs...)
}
