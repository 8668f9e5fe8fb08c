package form

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/ui/node"
)

// Result tells the form what a widget did with a message.
type Result int

const (
	// Ignored means the widget did not use the message.
	Ignored Result = iota
	// Handled means the widget consumed the message.
	Handled
	// Committed means the widget consumed the message and committed a value.
	Committed
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case Committed:
		return "committed"
	default:
		return "ignored"
	}
}

// Widget is the interface for interactive widgets hosted by a Form.
type Widget interface {
	// ID returns a unique identifier for this widget.
	ID() string

	// Title returns the label rendered above the widget.
	Title() string

	// Node returns the widget's container. The form attaches it to its
	// document; focus moves between widgets through it.
	Node() *node.Node

	// Attach subscribes the widget to focus changes of doc. It is called
	// after the container has been appended to the document.
	Attach(doc *node.Document)

	// Detach releases everything Attach acquired.
	Detach()

	// Init returns an initial command.
	Init() tea.Cmd

	// Update handles a message. Key presses only reach the widget whose
	// container holds document focus; everything else is broadcast.
	Update(msg tea.Msg) (tea.Cmd, Result)

	// View renders the widget.
	View() string

	// Help returns the bindings shown while the widget holds focus.
	Help() []key.Binding

	// Value returns the widget's current value for the summary.
	Value() string
}

// Pointer is implemented by widgets that react to the mouse. Coordinates
// are relative to the widget's rendered view.
type Pointer interface {
	PointerDown(x, y int) (tea.Cmd, Result)
	PointerMove(x, y int)
}

// Scheduler is implemented by widgets that need to run a command outside
// their own Update, such as a deferred focus retry. The form polls it after
// every message.
type Scheduler interface {
	Scheduled() tea.Cmd
}
