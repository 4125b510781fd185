package cmd

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/tui"
)

// localPlayer is the player id terminal results are recorded under.
const localPlayer = "local"

func newDailyCmd(a *app) *cobra.Command {
	var date, challenge, category string
	var interactive bool
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show or play the daily puzzle",
		Long: `Daily prints the shared puzzle of the day. Everyone gets the same board
for a given date.

With --play the board opens full screen and a completed puzzle is recorded
in DB_PATH, where the leaderboard command can see it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			if challenge == "" {
				challenge = puzzle.DailyChallengeID(day)
			}
			p, err := a.selectPuzzle(day, challenge, category)
			if err != nil {
				return err
			}
			if !interactive {
				printPuzzle(cmd.OutOrStdout(), "Daily challenge "+day.Format("2006-01-02"), p, nil)
				return nil
			}

			conn, err := a.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()
			results := daily.NewStore(conn)

			sess := a.newSession(p, challenge)
			m := tui.New(sess, a.tuiOptions(category, func(s *game.Session) {
				recordLocal(cmd.Context(), results, s)
			}))
			return a.play(cmd.InOrStdin(), cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "puzzle date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&challenge, "challenge", "c", "", "challenge id (default the daily id for --date)")
	cmd.Flags().StringVar(&category, "category", "", "theme to draw from")
	cmd.Flags().BoolVarP(&interactive, "play", "p", false, "play the puzzle and record the result")
	return cmd
}

// recordLocal stores a completed daily session; failures are logged only.
func recordLocal(ctx context.Context, results *daily.Store, s *game.Session) {
	res, ok := daily.ResultOf(localPlayer, s)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := results.InsertResult(ctx, res); err != nil {
		log.Warn().Err(err).Str("date", res.Date).Msg("record daily result")
	}
}
