package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/game"
)

func newLeaderboardCmd(a *app) *cobra.Command {
	var date string
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the daily leaderboard stored in DB_PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			conn, err := a.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()

			key := day.Format("2006-01-02")
			rows, err := daily.NewStore(conn).Leaderboard(cmd.Context(), key, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No results for %s yet.\n", key)
				return nil
			}
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "Player", "Time", "Hints"})
			table.SetBorder(false)
			table.SetAutoFormatHeaders(false)
			table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
			for _, r := range rows {
				table.Append([]string{
					strconv.Itoa(r.Rank),
					playerLabel(r),
					game.FormatElapsed(r.ElapsedMs / 1000),
					strconv.Itoa(r.HintsUsed),
				})
			}
			table.SetFooter([]string{"", fmt.Sprintf("%d players", len(rows)), "", ""})
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "leaderboard date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&limit, "limit", daily.DefaultLeaderboardLimit, "maximum rows to show")
	return cmd
}

// playerLabel prefers the stored profile name over the opaque player id.
func playerLabel(r daily.LBRow) string {
	if r.Name != "" {
		return r.Name
	}
	if len(r.PlayerID) > 8 {
		return r.PlayerID[:8]
	}
	return r.PlayerID
}
