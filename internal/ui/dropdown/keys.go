package dropdown

import "charm.land/bubbles/v2/key"

// KeyMap defines the dropdown bindings.
type KeyMap struct {
	Open     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the default dropdown bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "space", "down"),
			key.WithHelp("enter", "open"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "run"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
