package tabs

import "charm.land/bubbles/v2/key"

// KeyMap defines the tab strip bindings. Arrow bindings also accept shift,
// which is not a platform modifier; ctrl, alt and meta combinations are
// left to the terminal.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the default tab strip bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "shift+right"),
			key.WithHelp("→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "shift+left"),
			key.WithHelp("←", "prev tab"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "open"),
		),
	}
}
