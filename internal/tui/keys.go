package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the board screen.
type keyMap struct {
	Up, Down, Left, Right key.Binding
	Tap                   key.Binding
	Clear                 key.Binding
	Hint                  key.Binding
	New                   key.Binding
	Share                 key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Tap:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Clear: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "clear")),
		Hint:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "hint")),
		New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new puzzle")),
		Share: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Clear, k.Hint, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Tap, k.Clear, k.Hint},
		{k.New, k.Share, k.Help, k.Quit},
	}
}
