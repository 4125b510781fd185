// Package cmd provides the root command and CLI setup for wordwonder.
package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/config"
	"github.com/robalobadob/wordwonder/internal/db"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/words"
)

// now is the clock every command reads; tests replace it.
var now = time.Now

// app holds what every subcommand needs, filled in by the root pre-run.
type app struct {
	cfg     config.Config
	catalog *puzzle.Catalog
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "wordwonder",
		Short: "Word-search puzzles in the terminal and over HTTP",
		Long: `WordWonder serves themed word-search puzzles.

Every day has a shared daily puzzle; challenge ids pick a stable puzzle
that anyone can replay. Play in the terminal, or run the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	cmd.AddCommand(
		newServeCmd(a),
		newPlayCmd(a),
		newDailyCmd(a),
		newArchiveCmd(a),
		newSolveCmd(a),
		newLeaderboardCmd(a),
	)
	return cmd
}

func (a *app) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.ApplyLogLevel()
	if err := words.Init(); err != nil {
		return fmt.Errorf("load definitions: %w", err)
	}
	cat, err := puzzle.Open(cfg.PuzzlesFile)
	if err != nil {
		return err
	}
	a.cfg, a.catalog = cfg, cat
	log.Debug().Int("puzzles", cat.Len()).Int("definitions", words.Stats()).Msg("ready")
	return nil
}

// openDB opens the results database at DB_PATH and applies migrations.
func (a *app) openDB() (*sql.DB, error) {
	conn, err := db.OpenAndMigrate(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.cfg.DBPath, err)
	}
	return conn, nil
}

// selectPuzzle resolves the shared puzzle flags into a puzzle.
func (a *app) selectPuzzle(date time.Time, challengeID, category string) (puzzle.Puzzle, error) {
	return puzzle.Select(a.catalog, puzzle.Request{
		Date:        date,
		ChallengeID: challengeID,
		Category:    category,
		Now:         now(),
	})
}

// parseDate reads a --date flag; empty means today.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
