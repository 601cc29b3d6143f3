package web

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/ports"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		s.log.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// record exports an interaction; failures are logged and otherwise ignored.
func (s *Server) record(r *http.Request, kind ports.InteractionKind, language string) {
	err := s.exporter.ExportInteraction(r.Context(), &ports.Interaction{
		Kind:     kind,
		Surface:  ports.SurfaceWeb,
		Language: language,
	})
	if err != nil {
		s.log.Warn("failed to export interaction", zap.String("kind", string(kind)), zap.Error(err))
	}
}
