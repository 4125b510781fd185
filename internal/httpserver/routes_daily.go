// internal/httpserver/routes_daily.go
//
// Daily challenge endpoints:
//   - GET /daily/leaderboard?date= → top results for a date (default today)
//   - GET /archive?days=           → the daily puzzles of past days
//   - GET /achievements            → the caller's stats and badges
//
// The daily puzzle itself is started through POST /game/new {"daily":true}.

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/puzzle"
)

const (
	defaultArchiveDays = 7
	maxArchiveDays     = 30
)

func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily/leaderboard", s.handleLeaderboard)
	r.Get("/archive", s.handleArchive)
	r.Get("/achievements", s.handleAchievements)
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(puzzle.DailyDate(s.now()))
	} else if _, err := daily.ParseDateKey(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, daily.DefaultLeaderboardLimit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, r, http.StatusInternalServerError, "server_error")
		return
	}
	render.JSON(w, r, lbRes{Date: date, Top: rows})
}

// archiveEntry is one row of /archive.
type archiveEntry struct {
	Date        string `json:"date"`
	ChallengeID string `json:"challengeId"`
	PuzzleID    string `json:"puzzleId"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Words       int    `json:"words"`
	Completed   bool   `json:"completed"`
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	days := defaultArchiveDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxArchiveDays {
			writeError(w, r, http.StatusBadRequest, "bad_days")
			return
		}
		days = n
	}
	entries, err := puzzle.Archive(s.catalog, s.now(), days)
	if err != nil {
		log.Error().Err(err).Msg("archive")
		writeError(w, r, http.StatusInternalServerError, "server_error")
		return
	}

	player := playerFrom(r.Context())
	out := make([]archiveEntry, 0, len(entries))
	for _, e := range entries {
		date := daily.DateKey(puzzle.DailyDate(e.Date))
		played, err := s.daily.AlreadyPlayed(r.Context(), player, date, e.Puzzle.ID)
		if err != nil {
			log.Warn().Err(err).Msg("archive played lookup")
		}
		out = append(out, archiveEntry{
			Date:        date,
			ChallengeID: e.ChallengeID,
			PuzzleID:    e.Puzzle.ID,
			Title:       e.Puzzle.Title,
			Category:    e.Puzzle.Category,
			Difficulty:  string(e.Puzzle.Difficulty),
			Words:       len(e.Puzzle.Words),
			Completed:   played,
		})
	}
	render.JSON(w, r, render.M{"days": out})
}

type achievementsRes struct {
	Stats        daily.Stats         `json:"stats"`
	Achievements []daily.Achievement `json:"achievements"`
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	st, err := s.daily.Stats(r.Context(), playerFrom(r.Context()), puzzle.DailyDate(s.now()))
	if err != nil {
		log.Error().Err(err).Msg("stats")
		writeError(w, r, http.StatusInternalServerError, "server_error")
		return
	}
	render.JSON(w, r, achievementsRes{Stats: st, Achievements: daily.Achievements(st)})
}
