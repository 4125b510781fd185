package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/internal/prefs"
)

func (s *Server) mountPrefs(r chi.Router) {
	r.Get("/profile", s.handleGetProfile)
	r.Put("/profile", s.handlePutProfile)
	r.Get("/settings", s.handleGetSettings)
	r.Put("/settings", s.handlePutSettings)
	r.Delete("/settings", s.handleResetSettings)
}

type profileRes struct {
	Profile prefs.Profile `json:"profile"`
	Edit    bool          `json:"edit"` // no name stored yet
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, edit, err := s.prefs.LoadProfile(r.Context(), playerFrom(r.Context()))
	if err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	render.JSON(w, r, profileRes{Profile: p, Edit: edit})
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var body prefs.Profile
	if !decode(w, r, &body) {
		return
	}
	p, err := s.prefs.SaveProfile(r.Context(), playerFrom(r.Context()), body)
	if errors.Is(err, prefs.ErrEmptyName) {
		writeError(w, r, http.StatusBadRequest, "empty_name")
		return
	}
	if err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	render.JSON(w, r, profileRes{Profile: p})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.prefs.LoadSettings(r.Context(), playerFrom(r.Context()))
	if err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	render.JSON(w, r, st)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	// start from the stored values so partial bodies only change what they name
	st, err := s.prefs.LoadSettings(r.Context(), playerFrom(r.Context()))
	if err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	if !decode(w, r, &st) {
		return
	}
	if err := s.prefs.SaveSettings(r.Context(), playerFrom(r.Context()), st); err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	render.JSON(w, r, st)
}

func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.prefs.ResetSettings(r.Context(), playerFrom(r.Context()))
	if err != nil {
		s.writePrefsError(w, r, err)
		return
	}
	render.JSON(w, r, st)
}

func (s *Server) writePrefsError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Msg("prefs")
	writeError(w, r, http.StatusInternalServerError, "server_error")
}
