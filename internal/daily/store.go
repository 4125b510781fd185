// internal/daily/store.go
//
// SQLite persistence for completed daily puzzles.
//
//   - InsertResult is idempotent per (player, date, puzzle).
//   - Leaderboard orders by elapsed time, then hints used, then insert time,
//     and shows the player's stored profile name when one exists.

package daily

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/puzzle"
)

// Result is one completed daily puzzle.
type Result struct {
	PlayerID  string `json:"playerId"`
	Date      string `json:"date"` // YYYY-MM-DD
	PuzzleID  string `json:"puzzleId"`
	Words     int    `json:"words"`
	HintsUsed int    `json:"hintsUsed"`
	ElapsedMs int    `json:"elapsedMs"`
}

// ResultOf builds the result row for a completed daily session. It reports
// false for sessions that were not started from a daily challenge id.
func ResultOf(playerID string, sess *game.Session) (Result, bool) {
	date, ok := puzzle.ParseDailyChallengeID(sess.ChallengeID)
	if !ok {
		return Result{}, false
	}
	return Result{
		PlayerID:  playerID,
		Date:      DateKey(date),
		PuzzleID:  sess.Puzzle.ID,
		Words:     len(sess.Puzzle.Words),
		HintsUsed: sess.HintsUsed(),
		ElapsedMs: sess.Elapsed() * 1000,
	}, true
}

// LBRow is one leaderboard entry.
type LBRow struct {
	Rank      int    `json:"rank"`
	PlayerID  string `json:"playerId"`
	Name      string `json:"name,omitempty"`
	PuzzleID  string `json:"puzzleId"`
	HintsUsed int    `json:"hintsUsed"`
	ElapsedMs int    `json:"elapsedMs"`
}

// DefaultLeaderboardLimit is used when a caller passes limit <= 0.
const DefaultLeaderboardLimit = 20

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether player has a result for date and puzzle.
func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date, puzzleID string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE player_id=? AND date=? AND puzzle_id=?`,
		playerID, date, puzzleID,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records r. A second result for the same key is ignored;
// inserted reports whether a row was written.
func (s *Store) InsertResult(ctx context.Context, r Result) (inserted bool, err error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results
			(player_id, date, puzzle_id, words, hints_used, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.PlayerID, r.Date, r.PuzzleID, r.Words, r.HintsUsed, r.ElapsedMs,
	)
	if err != nil {
		return false, fmt.Errorf("insert daily result: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Leaderboard returns the top results for date.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.player_id,
		       COALESCE(CASE WHEN json_valid(p.value) THEN json_extract(p.value, '$.name') END, ''),
		       r.puzzle_id, r.hints_used, r.elapsed_ms
		FROM daily_results r
		LEFT JOIN prefs p ON p.player_id = r.player_id AND p.key = 'userProfile'
		WHERE r.date=?
		ORDER BY r.elapsed_ms ASC, r.hints_used ASC, r.created_at ASC, r.id ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		r := LBRow{Rank: len(out) + 1}
		if err := rows.Scan(&r.PlayerID, &r.Name, &r.PuzzleID, &r.HintsUsed, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates every result of playerID; streaks are measured up to today.
func (s *Store) Stats(ctx context.Context, playerID string, today time.Time) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(1),
		       COALESCE(MIN(elapsed_ms), 0),
		       COALESCE(SUM(CASE WHEN hints_used = 0 THEN 1 ELSE 0 END), 0)
		FROM daily_results WHERE player_id=?`, playerID,
	).Scan(&st.Completed, &st.BestMs, &st.NoHint)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT date FROM daily_results WHERE player_id=?`, playerID)
	if err != nil {
		return Stats{}, fmt.Errorf("query dates: %w", err)
	}
	defer rows.Close()
	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return Stats{}, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	st.CurrentStreak, st.LongestStreak = Streaks(dates, today)
	return st, nil
}
