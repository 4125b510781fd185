package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/puzzle"
)

const maxArchiveDays = 30

func newArchiveCmd(a *app) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "List the daily puzzles of previous days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 1 || days > maxArchiveDays {
				return fmt.Errorf("--days must be between 1 and %d, got %d", maxArchiveDays, days)
			}
			entries, err := puzzle.Archive(a.catalog, now(), days)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Date", "Challenge", "Title", "Category", "Difficulty", "Words"})
			table.SetBorder(false)
			table.SetAutoFormatHeaders(false)
			for _, e := range entries {
				table.Append([]string{
					e.Date.Format("2006-01-02"),
					e.ChallengeID,
					e.Puzzle.Title,
					e.Puzzle.Category,
					string(e.Puzzle.Difficulty),
					strconv.Itoa(len(e.Puzzle.Words)),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 7, "number of previous days to list")
	return cmd
}
