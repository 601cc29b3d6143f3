package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/ports"
	"github.com/emiliopalmerini/polyglot/internal/web"
)

// Run serves the web dashboard until ctx is cancelled or the process
// receives SIGINT or SIGTERM.
func Run(ctx context.Context, cfg *Config, svc *dashboard.Service, exporter ports.MetricsExporter, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(WebConfig(cfg), svc, exporter, log)
	return srv.Start(ctx)
}

// WebConfig maps the environment settings onto the web server.
func WebConfig(cfg *Config) web.Config {
	var key []byte
	if cfg.SessionKey != "" {
		key = []byte(cfg.SessionKey)
	}
	return web.Config{
		Addr:               cfg.Addr,
		ShutdownTimeout:    cfg.ShutdownTimeout,
		SessionKey:         key,
		SessionIdleTimeout: cfg.SessionIdleTimeout,
	}
}
