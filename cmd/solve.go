package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/puzzle"
)

func newSolveCmd(a *app) *cobra.Command {
	var date, challenge, category string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print a puzzle with every word located",
		Long: `Solve selects a puzzle the same way play and daily do and prints the
board with every hidden word marked, followed by each word's placements.

With no flags it solves today's daily puzzle.`,
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

			out := cmd.OutOrStdout()
			printPuzzle(out, "Solution "+challenge, p, grid.SolvedCells(p.Grid, p.Words))

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Word", "Start", "End", "Direction"})
			table.SetBorder(false)
			table.SetAutoFormatHeaders(false)
			missing := 0
			for _, w := range p.Words {
				placements := grid.Locate(p.Grid, w)
				if len(placements) == 0 {
					missing++
					table.Append([]string{w, "-", "-", "not placed"})
					continue
				}
				for _, pl := range placements {
					start, end, dir := placementLabel(pl)
					table.Append([]string{w, start, end, dir})
				}
			}
			table.Render()
			if missing > 0 {
				return fmt.Errorf("%d of %d words are not on the board", missing, len(p.Words))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "puzzle date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&challenge, "challenge", "c", "", "challenge id (default the daily id for --date)")
	cmd.Flags().StringVar(&category, "category", "", "theme to draw from")
	return cmd
}
