package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/random"
	"github.com/robalobadob/wordwonder/internal/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	var challenge, category string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a puzzle in the terminal",
		Long: `Play opens the board full screen. Move with the arrow keys, tap a cell
with space or enter and close a word by tapping its first letter again.

Without --challenge a fresh puzzle is drawn; pass an id to replay the same
board as someone else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.selectPuzzle(now(), challenge, category)
			if err != nil {
				return err
			}
			sess := a.newSession(p, challenge)
			m := tui.New(sess, a.tuiOptions(category, nil))
			return a.play(cmd.InOrStdin(), cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().StringVarP(&challenge, "challenge", "c", "", "challenge id to replay")
	cmd.Flags().StringVar(&category, "category", "", "theme to draw from")
	return cmd
}

// newSession starts a game session with a freshly seeded hint generator.
func (a *app) newSession(p puzzle.Puzzle, challengeID string) *game.Session {
	seed, err := random.NewSeed()
	if err != nil {
		seed = now().UnixNano()
	}
	return game.New(p, game.Options{
		ChallengeID: challengeID,
		HintBudget:  a.cfg.HintBudget,
		Rand:        random.New(seed),
		Now:         now,
	})
}

// tuiOptions wires the board screen to the catalog for "new puzzle".
func (a *app) tuiOptions(category string, onComplete func(*game.Session)) tui.Options {
	return tui.Options{
		ProductName: a.cfg.ProductName,
		ShareURL:    a.cfg.ShareURL,
		NewPuzzle: func() (puzzle.Puzzle, string, error) {
			id := puzzle.NewChallengeID(now())
			p, err := a.selectPuzzle(now(), id, category)
			return p, id, err
		},
		OnComplete: onComplete,
	}
}

// play runs m and prints a one-line result once the player quits.
func (a *app) play(in io.Reader, out io.Writer, m tui.Model) error {
	final, err := tui.Run(m, in, out)
	if err != nil {
		return err
	}
	sess := final.Session()
	if sess.Complete() {
		fmt.Fprintln(out, sess.ShareText(a.cfg.ProductName, a.cfg.ShareURL))
		return nil
	}
	fmt.Fprintf(out, "Found %d of %d words in %s.\n", len(sess.Found()), len(sess.Puzzle.Words), sess.FormattedTime())
	return nil
}
