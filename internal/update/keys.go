package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the prediction screen.
type KeyMap struct {
	Submit    key.Binding
	NextField key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	Examples  []key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s", "alt+enter"),
			key.WithHelp("ctrl+s", "predict"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "check backend"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy sentence"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Examples: []key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "example 1")),
			key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "example 2")),
			key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "example 3")),
			key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "example 4")),
		},
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextField, k.Refresh, k.Copy},
		k.Examples,
		{k.Help, k.Quit},
	}
}
