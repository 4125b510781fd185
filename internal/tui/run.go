package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Run plays s full screen until the player quits and returns the final model.
// Logging is silenced while the terminal is in raw mode.
func Run(s Model, in io.Reader, out io.Writer) (Model, error) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(prev)

	opts := []tea.ProgramOption{tea.WithOutput(out), tea.WithInput(in)}
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(s, opts...).Run()
	if err != nil {
		return s, err
	}
	m, _ := final.(Model)
	return m, nil
}
