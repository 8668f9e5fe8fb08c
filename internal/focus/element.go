package focus

// Element is a node a Manager can move keyboard focus to.
type Element interface {
	// Focus makes the element the active element of its document.
	Focus()
	// Disabled reports whether the element refuses focus.
	Disabled() bool
	// Rendered reports whether the element currently occupies layout space.
	Rendered() bool
	// Attached reports whether the element is part of a live document.
	Attached() bool
}

// Container is the view-layer capability a Manager drives. It enumerates
// the navigation candidates below it; the Manager does all filtering.
type Container interface {
	Element

	// Navigable returns the descendants that carry the navigation marker,
	// in document order. Disabled and unrendered ones are included.
	Navigable() []Element

	// Query returns the first descendant matching selector, or nil.
	Query(selector string) Element

	// Contains reports whether el is a descendant of the container.
	Contains(el Element) bool

	TabIndex() int
	SetTabIndex(i int)
}

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
	ModOS
)

// platform modifiers are reserved for system shortcuts.
const platformMods = ModAlt | ModCtrl | ModMeta | ModOS

// Event is a focus, blur or key event delivered to a container.
type Event struct {
	// Target is the element the event originated at.
	Target Element
	// CurrentTarget is the element whose handler is running.
	CurrentTarget Element
	// RelatedTarget is the element gaining focus on blur, or losing it on
	// focus. Nil when focus comes from or goes outside the document.
	RelatedTarget Element
	Key           string
	Mods          Modifiers

	defaultPrevented bool
	stopped          bool
	bounced          bool
}

// PreventDefault marks the event as consumed by the engine.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching outer containers.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// HasPlatformModifier reports whether meta, alt, control or the OS key is
// held. Shift alone does not count.
func (e *Event) HasPlatformModifier() bool {
	return e.Mods&platformMods != 0
}
