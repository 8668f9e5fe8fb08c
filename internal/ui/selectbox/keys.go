package selectbox

import "charm.land/bubbles/v2/key"

// KeyMap defines the select box bindings.
type KeyMap struct {
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default select box bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "space", "down"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
