// Package disclosure implements the state machine behind widgets that
// toggle an auxiliary list: select boxes, comboboxes and dropdown menus.
//
// State changes only through Reduce, a pure function of the previous state
// and an Action. Hosts keep the State, dispatch actions from their input
// handlers and render from the result.
package disclosure

import (
	"fmt"
	"slices"
)

// Option is one static choice. Values must be non-empty and unique within
// a list; two options are the same option when their values are equal.
type Option struct {
	Value string
	Label string
}

// State is the observable state of a disclosure widget.
type State struct {
	IsOpen     bool
	IsFocused  bool
	IsKeyboard bool
	// Highlighted is the value of the highlighted entry, empty for none.
	Highlighted     string
	Filter          string
	FilteredOptions []Option
}

// NewState returns the initial state for options: closed, unfocused,
// nothing highlighted, no filter.
func NewState(options []Option) State {
	return State{FilteredOptions: slices.Clone(options)}
}

// ActionType enumerates the transitions of the state machine. The zero
// value is not a valid action and passes state through.
type ActionType int

const (
	ActionOpen ActionType = iota + 1
	ActionClose
	ActionSelect
	ActionFocus
	ActionBlur
	ActionHighlight
	ActionHighlightReset
	ActionFilter
	ActionFilterClear
	ActionMouse
)

var actionNames = map[ActionType]string{
	ActionOpen:           "open",
	ActionClose:          "close",
	ActionSelect:         "select",
	ActionFocus:          "focus",
	ActionBlur:           "blur",
	ActionHighlight:      "highlight",
	ActionHighlightReset: "highlight-reset",
	ActionFilter:         "filter",
	ActionFilterClear:    "filter-clear",
	ActionMouse:          "mouse",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(t))
}

// Action is a request to change State.
type Action struct {
	Type ActionType
	// Value is the highlight target for open and highlight, and the filter
	// text for filter.
	Value string
	// Options is the full static option list, used by actions that reset or
	// recompute the filtered set.
	Options []Option
	// Matcher filters options for ActionFilter. Nil means Substring.
	Matcher Matcher
}

// Open opens the list with highlight as the highlighted value.
func Open(highlight string) Action { return Action{Type: ActionOpen, Value: highlight} }

// Highlight moves the highlight to value.
func Highlight(value string) Action { return Action{Type: ActionHighlight, Value: value} }

// Filter recomputes the filtered set from options with m.
func Filter(text string, options []Option, m Matcher) Action {
	return Action{Type: ActionFilter, Value: text, Options: options, Matcher: m}
}

func Close() Action                       { return Action{Type: ActionClose} }
func Focus() Action                       { return Action{Type: ActionFocus} }
func HighlightReset() Action              { return Action{Type: ActionHighlightReset} }
func Mouse() Action                       { return Action{Type: ActionMouse} }
func Select(options []Option) Action      { return Action{Type: ActionSelect, Options: options} }
func Blur(options []Option) Action        { return Action{Type: ActionBlur, Options: options} }
func FilterClear(options []Option) Action { return Action{Type: ActionFilterClear, Options: options} }

// Reduce applies a to s and returns the new state. It never mutates s and
// never fails: unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionOpen:
		s.IsOpen = true
		s.IsFocused = true
		s.Highlighted = a.Value
	case ActionClose:
		s.IsOpen = false
	case ActionSelect:
		s.IsOpen = false
		s.Filter = ""
		s.FilteredOptions = slices.Clone(a.Options)
	case ActionFocus:
		s.IsFocused = true
	case ActionBlur:
		s.IsFocused = false
		s.IsOpen = false
		s.Filter = ""
		s.FilteredOptions = slices.Clone(a.Options)
	case ActionHighlight:
		s.Highlighted = a.Value
		s.IsKeyboard = true
	case ActionHighlightReset:
		s.Highlighted = ""
	case ActionFilter:
		match := a.Matcher
		if match == nil {
			match = Substring
		}
		filtered := match(a.Value, a.Options)
		if len(filtered) > 0 && !containsValue(filtered, s.Highlighted) {
			s.Highlighted = filtered[0].Value
		}
		s.Filter = a.Value
		s.FilteredOptions = filtered
		s.IsOpen = true
		s.IsKeyboard = true
	case ActionFilterClear:
		s.Filter = ""
		s.FilteredOptions = slices.Clone(a.Options)
	case ActionMouse:
		s.IsKeyboard = false
	}
	return s
}

func containsValue(options []Option, value string) bool {
	if value == "" {
		return false
	}
	return slices.ContainsFunc(options, func(o Option) bool { return o.Value == value })
}

// IndexOf returns the position of value in options, or -1.
func IndexOf(options []Option, value string) int {
	if value == "" {
		return -1
	}
	return slices.IndexFunc(options, func(o Option) bool { return o.Value == value })
}
