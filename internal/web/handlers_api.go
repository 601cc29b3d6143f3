package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/chart"
	"github.com/emiliopalmerini/polyglot/internal/domain"
)

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.service.Stats()); err != nil {
		s.log.Error("encode stats", zap.Error(err))
	}
}

func (s *Server) handleChartDistribution(w http.ResponseWriter, r *http.Request) {
	s.serveChart(w, r, chart.Pie)
}

func (s *Server) handleChartPhrasesByLanguage(w http.ResponseWriter, r *http.Request) {
	s.serveChart(w, r, chart.Bar)
}

func (s *Server) serveChart(w http.ResponseWriter, r *http.Request, draw func([]domain.LanguageSummary, chart.Size) ([]byte, error)) {
	svg, err := draw(s.service.Summaries(), chart.Size{})
	if errors.Is(err, chart.ErrNoData) {
		http.Error(w, "no data", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("render chart", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(svg)
}
