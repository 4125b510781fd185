package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/db"
	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/prefs"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/random"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local)

// setup isolates a command run: fixed clock, empty working directory and a
// temp database. It returns the database path.
func setup(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	dbPath := filepath.Join(t.TempDir(), "ww.db")
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("PUZZLES_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	original := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = original })
	return dbPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func dailyPuzzle(t *testing.T, day time.Time) puzzle.Puzzle {
	t.Helper()
	cat, err := puzzle.Default()
	require.NoError(t, err)
	p, err := puzzle.Select(cat, puzzle.Request{Date: day, ChallengeID: puzzle.DailyChallengeID(day)})
	require.NoError(t, err)
	return p
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"serve", "play", "daily", "archive", "solve", "leaderboard"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestPlayCmd_Flags(t *testing.T) {
	cmd := newPlayCmd(&app{})
	challenge := cmd.Flags().Lookup("challenge")
	require.NotNil(t, challenge)
	assert.Equal(t, "c", challenge.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("category"))
}

func TestDailyCmd_PrintsPuzzleOfTheDay(t *testing.T) {
	setup(t)
	out, err := run(t, "daily", "--date", "2026-10-14")
	require.NoError(t, err)

	p := dailyPuzzle(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local))
	assert.Contains(t, out, "Daily challenge 2026-10-14")
	assert.Contains(t, out, p.Title)
	assert.Contains(t, out, "Words ("+strconv.Itoa(len(p.Words))+"): "+strings.Join(p.Words, ", "))
}

func TestDailyCmd_DefaultsToToday(t *testing.T) {
	setup(t)
	today, err := run(t, "daily")
	require.NoError(t, err)
	explicit, err := run(t, "daily", "-d", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, explicit, today)
}

func TestDailyCmd_RejectsBadDate(t *testing.T) {
	setup(t)
	_, err := run(t, "daily", "--date", "14/10/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
}

func TestSolveCmd_LocatesEveryWord(t *testing.T) {
	setup(t)
	out, err := run(t, "solve", "--date", "2026-10-14")
	require.NoError(t, err)

	p := dailyPuzzle(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local))
	assert.Contains(t, out, "Solution daily-2026-10-14")
	assert.Contains(t, out, "Direction")
	assert.NotContains(t, out, "not placed")
	for _, w := range p.Words {
		start, end, _ := placementLabel(grid.Locate(p.Grid, w)[0])
		assert.Contains(t, out, start, w)
		assert.Contains(t, out, end, w)
	}
}

func TestSolveCmd_ChallengeIsStable(t *testing.T) {
	setup(t)
	first, err := run(t, "solve", "--challenge", "friday-club")
	require.NoError(t, err)
	second, err := run(t, "solve", "-c", "friday-club")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestArchiveCmd_ListsPreviousDays(t *testing.T) {
	setup(t)
	out, err := run(t, "archive", "--days", "3")
	require.NoError(t, err)
	for _, id := range []string{"daily-2026-10-13", "daily-2026-10-12", "daily-2026-10-11"} {
		assert.Contains(t, out, id)
	}
	assert.NotContains(t, out, "daily-2026-10-14")
	assert.NotContains(t, out, "daily-2026-10-10")
}

func TestArchiveCmd_RejectsDaysOutOfRange(t *testing.T) {
	setup(t)
	for _, days := range []string{"0", "31"} {
		_, err := run(t, "archive", "--days", days)
		require.Error(t, err, days)
		assert.Contains(t, err.Error(), "between 1 and 30")
	}
}

func TestLeaderboardCmd(t *testing.T) {
	dbPath := setup(t)
	ctx := context.Background()

	conn, err := db.OpenAndMigrate(dbPath)
	require.NoError(t, err)
	results := daily.NewStore(conn)
	for _, r := range []daily.Result{
		{PlayerID: "slowpoke-0000-1111", ElapsedMs: 250_000, HintsUsed: 0},
		{PlayerID: "player-one-long-id", ElapsedMs: 95_000, HintsUsed: 1},
	} {
		r.Date, r.PuzzleID = "2026-10-14", "animal-kingdom"
		_, err := results.InsertResult(ctx, r)
		require.NoError(t, err)
	}
	_, err = prefs.New(prefs.NewSQLiteKV(conn)).SaveProfile(ctx, "player-one-long-id", prefs.Profile{Name: "Ada"})
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	out, err := run(t, "leaderboard", "--date", "2026-10-14")
	require.NoError(t, err)
	assert.Contains(t, out, "1:35")
	assert.Contains(t, out, "4:10")
	assert.Contains(t, out, "2 players")
	ada, slow := strings.Index(out, "Ada"), strings.Index(out, "slowpoke")
	require.True(t, ada >= 0 && slow >= 0, out)
	assert.Less(t, ada, slow)
	assert.NotContains(t, out, "slowpoke-0000")
}

func TestLeaderboardCmd_Empty(t *testing.T) {
	setup(t)
	out, err := run(t, "leaderboard")
	require.NoError(t, err)
	assert.Equal(t, "No results for 2026-10-14 yet.\n", out)
}

func TestRecordLocal(t *testing.T) {
	dbPath := setup(t)
	conn, err := db.OpenAndMigrate(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	results := daily.NewStore(conn)
	ctx := context.Background()

	p := puzzle.Puzzle{ID: "cats", Title: "Cats", Grid: grid.MustNew("CAT", "XXX", "XXX"), Words: []string{"CAT"}}
	sess := game.New(p, game.Options{ChallengeID: "daily-2026-10-14", Rand: random.New(1)})
	sess.Tick()
	for _, c := range []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 0}} {
		sess.Tap(c)
	}
	require.True(t, sess.Complete())

	recordLocal(ctx, results, sess)
	recordLocal(ctx, results, sess)
	rows, err := results.Leaderboard(ctx, "2026-10-14", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, localPlayer, rows[0].PlayerID)
	assert.Equal(t, 1000, rows[0].ElapsedMs)

	// Fresh puzzles drawn with "n" are not daily results.
	other := game.New(p, game.Options{ChallengeID: puzzle.NewChallengeID(testNow)})
	recordLocal(ctx, results, other)
	rows, err = results.Leaderboard(ctx, "2026-10-14", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPlacementLabel(t *testing.T) {
	tests := []struct {
		pl              grid.Placement
		start, end, dir string
	}{
		{grid.Walk(grid.Coord{Row: 0, Col: 0}, grid.Direction{DRow: 0, DCol: 1}, 3), "(0,0)", "(0,2)", "E"},
		{grid.Walk(grid.Coord{Row: 3, Col: 3}, grid.Direction{DRow: -1, DCol: -1}, 4), "(3,3)", "(0,0)", "NW"},
		{grid.Walk(grid.Coord{Row: 0, Col: 4}, grid.Direction{DRow: 1, DCol: -1}, 2), "(0,4)", "(1,3)", "SW"},
	}
	for _, tt := range tests {
		start, end, dir := placementLabel(tt.pl)
		assert.Equal(t, []string{tt.start, tt.end, tt.dir}, []string{start, end, dir})
	}
}

func TestPlayerLabel(t *testing.T) {
	assert.Equal(t, "Ada", playerLabel(daily.LBRow{PlayerID: "0123456789", Name: "Ada"}))
	assert.Equal(t, "01234567", playerLabel(daily.LBRow{PlayerID: "0123456789"}))
	assert.Equal(t, "local", playerLabel(daily.LBRow{PlayerID: "local"}))
}
