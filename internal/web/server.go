package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/ports"
	"github.com/emiliopalmerini/polyglot/internal/server"
	"github.com/emiliopalmerini/polyglot/internal/viewstate"
)

//go:embed static/*
var staticFiles embed.FS

// Config holds web server settings.
type Config struct {
	Addr               string
	ShutdownTimeout    time.Duration
	SessionKey         []byte
	SessionIdleTimeout time.Duration
}

type Server struct {
	cfg      Config
	log      *zap.Logger
	router   *chi.Mux
	service  *dashboard.Service
	states   *viewstate.Registry
	store    sessions.Store
	exporter ports.MetricsExporter
}

func NewServer(cfg Config, svc *dashboard.Service, exporter ports.MetricsExporter, log *zap.Logger) *Server {
	key := cfg.SessionKey
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		log.Warn("no session key configured, visitor cookies will not survive a restart")
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionIdleTimeout.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		router:   server.NewRouter(log),
		service:  svc,
		states:   viewstate.NewRegistry(cfg.SessionIdleTimeout),
		store:    store,
		exporter: exporter,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/", s.handleDashboard)
	s.router.Post("/select/language", s.handleSelectLanguage)
	s.router.Post("/select/phrase", s.handleSelectPhrase)

	s.router.Get("/charts/distribution.svg", s.handleChartDistribution)
	s.router.Get("/charts/phrases-by-language.svg", s.handleChartPhrasesByLanguage)

	s.router.Get("/api/stats", s.handleAPIStats)
}

// ServeHTTP lets the server be mounted or exercised directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := server.NewHTTPServer(s.cfg.Addr, s.router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
