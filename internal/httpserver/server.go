// internal/httpserver/server.go
//
// HTTP server wiring for the WordWonder backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, request log, panic recovery,
//     timeouts, credentialed CORS, player identity).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: /game/* (routes_game.go).
//   - Daily endpoints: leaderboard, archive, achievements (routes_daily.go).
//   - Preferences: /profile, /settings (routes_prefs.go).
//
// Notes:
//   - Sessions live in the in-memory store; completed daily puzzles and
//     preferences are persisted in SQLite.
//   - Every request carries a player id from the signed player cookie
//     (player.go); a new one is issued on first contact.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/internal/config"
	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/prefs"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/store"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Config   config.Config
	Catalog  *puzzle.Catalog
	Sessions store.Store
	Daily    *daily.Store
	Prefs    *prefs.Store
	Now      func() time.Time // nil means time.Now
}

// Server bundles the router and its dependencies.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	catalog  *puzzle.Catalog
	sessions store.Store
	daily    *daily.Store
	prefs    *prefs.Store
	players  *playerTokens
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Now == nil {
		d.Now = time.Now
	}
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      d.Config,
		catalog:  d.Catalog,
		sessions: d.Sessions,
		daily:    d.Daily,
		prefs:    d.Prefs,
		now:      d.Now,
	}
	s.players = newPlayerTokens(d.Config.TokenSecret, d.Config.TokenTTL(), d.Config.Production(), d.Now)

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(render.SetContentType(render.ContentTypeJSON))
	s.r.Use(cors(d.Config.ClientOrigin))

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, render.M{
			"service": "wordwonder",
			"endpoints": []string{
				"/health", "POST /game/new", "GET /game/{id}", "POST /game/tap",
				"POST /game/clear", "POST /game/hint", "GET /game/{id}/share",
				"/daily/leaderboard", "/archive", "/profile", "/settings", "/achievements",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, render.M{"ok": true, "puzzles": s.catalog.Len()})
	})

	s.r.Group(func(r chi.Router) {
		r.Use(s.players.middleware)
		s.mountGame(r)
		s.mountDaily(r)
		s.mountPrefs(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found")
	})
	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// Serve runs an http.Server on addr until ctx is cancelled, then shuts it
// down gracefully within grace.
func (s *Server) Serve(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- helpers -----------------------------------

// errorRes is the body of every non-2xx JSON response.
type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string) {
	render.Status(r, status)
	render.JSON(w, r, errorRes{Error: code})
}

func writeErrorMsg(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorRes{Error: code, Message: msg})
}

// decode reads a JSON body into v, writing 400 bad_json on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}
