// internal/httpserver/routes_game.go
//
// Game endpoints:
//   - POST /game/new        → select a puzzle and start a session
//   - GET  /game/{id}       → session snapshot
//   - POST /game/tap        → apply one cell tap
//   - POST /game/clear      → drop the active selection
//   - POST /game/hint       → spend a hint
//   - GET  /game/{id}/share → share text
//
// A session started with a daily challenge id records its completion in the
// daily results table (best effort).

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/hint"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/random"
	"github.com/robalobadob/wordwonder/internal/store"
)

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/tap", s.handleTap)
		r.Post("/clear", s.handleClear)
		r.Post("/hint", s.handleHint)
		r.Get("/{id}", s.handleGetGame)
		r.Get("/{id}/share", s.handleShare)
	})
}

// newGameReq is the body of POST /game/new. All fields are optional.
type newGameReq struct {
	ChallengeID string `json:"challengeId"`
	Category    string `json:"category"`
	Daily       bool   `json:"daily"` // use today's shared daily challenge id
}

type newGameRes struct {
	game.Snapshot
	AlreadyPlayed bool `json:"alreadyPlayed"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	now := s.now()
	if req.Daily {
		req.ChallengeID = puzzle.DailyChallengeID(now)
	}
	// A daily id selects the puzzle of its own date; future days are closed.
	date := now
	if d, ok := puzzle.ParseDailyChallengeID(req.ChallengeID); ok {
		if d.After(puzzle.DailyDate(now)) {
			writeErrorMsg(w, r, http.StatusBadRequest, "bad_date", "That daily challenge is not out yet")
			return
		}
		date = d
	}
	p, err := puzzle.Select(s.catalog, puzzle.Request{
		Date:        date,
		ChallengeID: req.ChallengeID,
		Category:    req.Category,
		Now:         now,
	})
	if err != nil {
		log.Error().Err(err).Msg("select puzzle")
		writeError(w, r, http.StatusInternalServerError, "no_puzzles")
		return
	}

	seed, err := random.NewSeed()
	if err != nil {
		seed = now.UnixNano()
	}
	sess := game.New(p, game.Options{
		ChallengeID: req.ChallengeID,
		HintBudget:  s.cfg.HintBudget,
		Rand:        random.New(seed),
		Now:         s.now,
	})
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, r, http.StatusInternalServerError, "save_failed")
		return
	}

	res := newGameRes{Snapshot: sess.Snapshot()}
	if _, ok := puzzle.ParseDailyChallengeID(req.ChallengeID); ok {
		played, err := s.daily.AlreadyPlayed(r.Context(), playerFrom(r.Context()), daily.DateKey(date), p.ID)
		if err != nil {
			log.Warn().Err(err).Msg("check daily played")
		}
		res.AlreadyPlayed = played
	}
	log.Debug().Str("gameId", sess.ID).Str("puzzle", p.ID).Str("challenge", req.ChallengeID).Msg("game started")
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, res)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.sessions.Update(r.Context(), chi.URLParam(r, "id"), func(sess *game.Session) error {
		sess.SyncClock(s.now())
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	render.JSON(w, r, snap)
}

// tapReq is the body of POST /game/tap.
type tapReq struct {
	GameID string `json:"gameId"`
	Row    *int   `json:"row"`
	Col    *int   `json:"col"`
}

type tapRes struct {
	Action        game.Action   `json:"action"`
	Path          []grid.Coord  `json:"path"`
	Result        game.Outcome  `json:"result,omitempty"`
	Word          string        `json:"word,omitempty"`
	Message       string        `json:"message,omitempty"`
	Found         []string      `json:"found"`
	Solved        []grid.Coord  `json:"solved"`
	Completed     bool          `json:"completed"`
	Complete      bool          `json:"complete"`
	FormattedTime string        `json:"formattedTime"`
	DailyResult   *daily.Result `json:"dailyResult,omitempty"`
}

func (s *Server) handleTap(w http.ResponseWriter, r *http.Request) {
	var req tapReq
	if !decode(w, r, &req) {
		return
	}
	if req.GameID == "" || req.Row == nil || req.Col == nil {
		writeError(w, r, http.StatusBadRequest, "invalid")
		return
	}

	var (
		res    tapRes
		result *daily.Result
	)
	err := s.sessions.Update(r.Context(), req.GameID, func(sess *game.Session) error {
		sess.SyncClock(s.now())
		tr := sess.Tap(grid.Coord{Row: *req.Row, Col: *req.Col})
		snap := sess.Snapshot()
		res = tapRes{
			Action:        tr.Action,
			Path:          tr.Path,
			Found:         snap.Found,
			Solved:        snap.Solved,
			Completed:     tr.Completed,
			Complete:      snap.Complete,
			FormattedTime: snap.FormattedTime,
		}
		if res.Path == nil {
			res.Path = []grid.Coord{}
		}
		if sub := tr.Submission; sub != nil {
			res.Result = sub.Outcome
			res.Word = sub.Word
			res.Message = game.Message(sub.Err())
		}
		if tr.Completed {
			res.Message = "Puzzle complete!"
			if dr, ok := daily.ResultOf(playerFrom(r.Context()), sess); ok {
				result = &dr
			}
		}
		return nil
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if result != nil {
		s.recordDaily(r, *result)
		res.DailyResult = result
	}
	render.JSON(w, r, res)
}

// recordDaily persists a daily result; failures are logged, never returned.
func (s *Server) recordDaily(r *http.Request, res daily.Result) {
	inserted, err := s.daily.InsertResult(r.Context(), res)
	if err != nil {
		log.Warn().Err(err).Str("player", res.PlayerID).Msg("record daily result")
		return
	}
	log.Info().Str("player", res.PlayerID).Str("date", res.Date).Str("puzzle", res.PuzzleID).
		Bool("inserted", inserted).Int("elapsedMs", res.ElapsedMs).Msg("daily completed")
}

// gameReq is the body of clear and hint requests.
type gameReq struct {
	GameID string `json:"gameId"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if !decode(w, r, &req) {
		return
	}
	var snap game.Snapshot
	err := s.sessions.Update(r.Context(), req.GameID, func(sess *game.Session) error {
		sess.Clear()
		sess.SyncClock(s.now())
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	render.JSON(w, r, snap)
}

type hintRes struct {
	hint.Hint
	HintsRemaining int `json:"hintsRemaining"`
	HintsUsed      int `json:"hintsUsed"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if !decode(w, r, &req) {
		return
	}
	var res hintRes
	err := s.sessions.Update(r.Context(), req.GameID, func(sess *game.Session) error {
		h, err := sess.UseHint()
		if err != nil {
			return err
		}
		res = hintRes{Hint: h, HintsRemaining: sess.HintsRemaining(), HintsUsed: sess.HintsUsed()}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrNoHintsRemaining):
		writeErrorMsg(w, r, http.StatusConflict, "no_hints_remaining", game.Message(err))
	case errors.Is(err, hint.ErrNoUnsolvedWords):
		writeErrorMsg(w, r, http.StatusConflict, "no_unsolved_words", game.Message(err))
	case err != nil:
		s.writeStoreError(w, r, err)
	default:
		render.JSON(w, r, res)
	}
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var text string
	err := s.sessions.Update(r.Context(), chi.URLParam(r, "id"), func(sess *game.Session) error {
		sess.SyncClock(s.now())
		text = sess.ShareText(s.cfg.ProductName, s.cfg.ShareURL)
		return nil
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	render.JSON(w, r, render.M{"text": text})
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("session store")
	writeError(w, r, http.StatusInternalServerError, "server_error")
}
