package web

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/dashboard"
	"github.com/emiliopalmerini/polyglot/internal/ports"
	sharedmw "github.com/emiliopalmerini/polyglot/internal/shared/middleware"
	"github.com/emiliopalmerini/polyglot/internal/viewstate"
	"github.com/emiliopalmerini/polyglot/internal/web/templates"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var model dashboard.Model
	s.withState(w, r, func(st *viewstate.State) {
		model = s.service.Build(st)
	})

	s.record(r, ports.InteractionView, model.LanguageFilter)
	s.render(w, r, templates.Page(model))
}

func (s *Server) handleSelectLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("lang")

	var (
		model dashboard.Model
		err   error
	)
	s.withState(w, r, func(st *viewstate.State) {
		if err = s.service.SelectLanguage(st, code); err == nil {
			model = s.service.Build(st)
		}
	})
	if err != nil {
		s.badRequest(w, err)
		return
	}

	s.record(r, ports.InteractionSelectLanguage, code)
	s.respondSelection(w, r, model)
}

func (s *Server) handleSelectPhrase(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.FormValue("phrase"))
	if err != nil {
		s.badRequest(w, dashboard.ErrUnknownPhrase)
		return
	}

	var model dashboard.Model
	s.withState(w, r, func(st *viewstate.State) {
		if err = s.service.SelectPhrase(st, index); err == nil {
			model = s.service.Build(st)
		}
	})
	if err != nil {
		s.badRequest(w, err)
		return
	}

	p, _ := s.service.Phrase(index)
	s.record(r, ports.InteractionSelectPhrase, p.Language)
	s.respondSelection(w, r, model)
}

// respondSelection answers htmx with the refreshed fragment and plain form
// posts with a redirect back to the page.
func (s *Server) respondSelection(w http.ResponseWriter, r *http.Request, model dashboard.Model) {
	if sharedmw.IsHTMX(r) {
		s.render(w, r, templates.Dashboard(model))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	if errors.Is(err, dashboard.ErrUnknownLanguage) || errors.Is(err, dashboard.ErrUnknownPhrase) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.Error("selection failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
