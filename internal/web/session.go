package web

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/polyglot/internal/viewstate"
)

const (
	sessionName = "polyglot-session"
	visitorKey  = "visitor"
)

// visitor returns the caller's id from the session cookie, issuing a new one
// when the cookie is missing or unreadable. It must run before the body is
// written since it may set a cookie.
func (s *Server) visitor(w http.ResponseWriter, r *http.Request) uuid.UUID {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			s.log.Warn("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			s.log.Error("session store error, using fresh session", zap.Error(err))
		}
	}

	if raw, ok := sess.Values[visitorKey].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}

	id := s.states.NewID()
	sess.Values[visitorKey] = id.String()
	if err := sess.Save(r, w); err != nil {
		s.log.Error("failed to save session", zap.Error(err))
	}
	return id
}

// withState runs fn against the caller's view state.
func (s *Server) withState(w http.ResponseWriter, r *http.Request, fn func(*viewstate.State)) {
	s.states.With(s.visitor(w, r), fn)
}
