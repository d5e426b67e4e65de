package tui

import "github.com/charmbracelet/bubbles/key"

// Step sizes for keyboard movement, in slider steps.
const (
	SmallStep = 1
	LargeStep = 10
)

// keyMap holds every binding the widget responds to. It implements
// help.KeyMap so the footer and the overlay stay in sync with the handlers.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	DecLarge key.Binding
	IncLarge key.Binding
	Min      key.Binding
	Max      key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab", "next slider"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab", "previous slider"),
	),
	Dec: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease"),
	),
	Inc: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase"),
	),
	DecLarge: key.NewBinding(
		key.WithKeys("shift+left", "pgdown"),
		key.WithHelp("shift+←/pgdn", "decrease by 10"),
	),
	IncLarge: key.NewBinding(
		key.WithKeys("shift+right", "pgup"),
		key.WithHelp("shift+→/pgup", "increase by 10"),
	),
	Min: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "minimum"),
	),
	Max: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "maximum"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Dec, k.Inc, k.Reset, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Dec, k.Inc, k.DecLarge, k.IncLarge},
		{k.Min, k.Max, k.Help, k.Quit},
	}
}
