package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding on the floor view plus the overlay keys shown
// in full help.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Advance  key.Binding
	Reset    key.Binding
	Pairing  key.Binding
	Special  key.Binding
	Allergy  key.Binding
	Provided key.Binding
	ViewNote key.Binding
	History  key.Binding
	Help     key.Binding
	Quit     key.Binding

	FilterTable key.Binding
	ClearLog    key.Binding
	Back        key.Binding

	Pick   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Yes    key.Binding
	No     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "table")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "table")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "dish")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "dish")),
		Advance:  key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next dish")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset table")),
		Pairing:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "pairing")),
		Special:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "special")),
		Allergy:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "allergy")),
		Provided: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "special provided")),
		ViewNote: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view allergy")),
		History:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "shift log")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		FilterTable: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "filter table")),
		ClearLog:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear log")),
		Back:        key.NewBinding(key.WithKeys("esc", "H"), key.WithHelp("esc", "back")),

		Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Special, k.Allergy, k.Pairing, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Advance, k.Reset, k.Pairing},
		{k.Special, k.Allergy, k.Provided, k.ViewNote},
		{k.History, k.Help, k.Quit},
	}
}

// historyKeys is the help shown on the shift log view.
type historyKeys struct{ keyMap }

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.FilterTable, k.ClearLog, k.Back, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
