// Package focus decides which element inside a container receives keyboard
// focus and moves it forward and backward on request.
//
// A Manager owns one container. When focus enters the container the
// Manager redirects it to the best candidate: an initial target, the
// element focused last time, or the first candidate. FocusNext and
// FocusPrev move through the candidates with optional wrap-around and
// remember where they stopped, so leaving and re-entering the container
// restores the position.
//
// The package knows nothing about rendering. The view layer supplies a
// Container that enumerates marked descendants; see internal/ui/node.
package focus

import (
	"fmt"

	"github.com/raphi011/tuikit/internal/log"
)

// Manager implements focus delegation and traversal for one container.
// It is not safe for concurrent use; all calls happen on the UI goroutine.
type Manager struct {
	container Container

	initial        []string
	initialElement Element
	wrap           bool
	selfFocusable  bool
	deferFn        func(retry func())
	log            *log.Logger

	focused          bool
	rooted           bool
	originalTabIndex int
	last             Element
	lastIndex        int
	pending          *Event
}

// New creates a manager for container. A nil container yields a manager
// whose operations are all no-ops.
func New(container Container) *Manager {
	return &Manager{
		container: container,
		wrap:      true,
		lastIndex: -1,
		log:       log.Discard(),
	}
}

// WithInitial sets selectors tried in order to pick the first target when
// nothing has been remembered yet.
func (m *Manager) WithInitial(selectors ...string) *Manager {
	m.initial = selectors
	return m
}

// WithInitialElement sets an explicit element as the first target.
// It takes precedence over WithInitial selectors.
func (m *Manager) WithInitialElement(el Element) *Manager {
	m.initialElement = el
	return m
}

// WithWrap enables or disables wrap-around at either end. Default true.
func (m *Manager) WithWrap(wrap bool) *Manager {
	m.wrap = wrap
	return m
}

// WithFocusableContainer keeps focus on the container itself when it is
// entered. The first FocusNext moves into the candidates and FocusPrev past
// the first candidate returns to the container.
func (m *Manager) WithFocusableContainer() *Manager {
	m.selfFocusable = true
	return m
}

// WithDeferral installs the hook used to re-deliver a focus event that
// arrived before the container was attached. The hook must call retry at
// most once, after the current event has been handled.
func (m *Manager) WithDeferral(fn func(retry func())) *Manager {
	m.deferFn = fn
	return m
}

// WithLogger sets the logger for focus decisions.
func (m *Manager) WithLogger(l *log.Logger) *Manager {
	if l != nil {
		m.log = l
	}
	return m
}

// Focused reports whether the container currently holds delegated focus.
func (m *Manager) Focused() bool { return m.focused }

// LastFocused returns the remembered element, or nil.
func (m *Manager) LastFocused() Element { return m.last }

// Pending reports whether a focus event is waiting for the container to
// attach.
func (m *Manager) Pending() bool { return m.pending != nil }

// Candidates returns the current focusable set: marked descendants that
// are enabled and rendered, in document order.
func (m *Manager) Candidates() []Element {
	if m.container == nil {
		return nil
	}
	var out []Element
	for _, el := range m.container.Navigable() {
		if el == nil || el.Disabled() || !el.Rendered() {
			continue
		}
		out = append(out, el)
	}
	return out
}

// ReceiveFocus handles focus entering the container. It returns true when
// the manager placed or accepted focus on a candidate.
func (m *Manager) ReceiveFocus(ev *Event) bool {
	ev.StopPropagation()

	if m.focused {
		return false
	}

	if m.container == nil || !m.container.Attached() {
		if ev.bounced {
			m.log.Debug("focus dropped, container never attached")
			return false
		}
		retry := *ev
		retry.bounced = true
		m.pending = &retry
		m.log.Debug("focus deferred, container not attached")
		if m.deferFn != nil {
			m.deferFn(func() { m.RetryPending() })
		}
		return false
	}

	if !m.rooted {
		m.rooted = true
		m.originalTabIndex = m.container.TabIndex()
	}

	m.focused = true
	if m.container.TabIndex() >= 0 {
		m.container.SetTabIndex(-1)
	}

	if m.selfFocusable {
		return false
	}

	if m.last == nil && m.hasInitial() {
		if el := m.resolveInitial(); el != nil {
			m.storeLast(el)
			el.Focus()
			m.log.Debug("focus initial target", "target", describe(el))
			return true
		}
	}

	candidates := m.Candidates()
	switch {
	case m.last != nil && indexOf(candidates, m.last) >= 0:
		m.last.Focus()
		m.log.Debug("focus restored", "target", describe(m.last))
		return true
	case ev.Target != nil && ev.Target != Element(m.container) && indexOf(candidates, ev.Target) >= 0:
		m.log.Debug("focus kept on candidate", "target", describe(ev.Target))
		return true
	case (ev.Target == nil || ev.Target == Element(m.container)) && len(candidates) > 0:
		candidates[0].Focus()
		m.log.Debug("focus first candidate", "target", describe(candidates[0]))
		return true
	}
	return false
}

// RetryPending re-delivers a deferred focus event once. If the container
// is still not attached the event is dropped.
func (m *Manager) RetryPending() bool {
	if m.pending == nil {
		return false
	}
	ev := m.pending
	m.pending = nil
	return m.ReceiveFocus(ev)
}

// ReceiveBlur handles focus leaving the container. Focus moving to the
// container itself or one of its descendants is not a blur. It returns true
// when the container was released.
func (m *Manager) ReceiveBlur(ev *Event) bool {
	if m.container == nil {
		return false
	}
	if rel := ev.RelatedTarget; rel != nil {
		if rel == Element(m.container) || m.container.Contains(rel) {
			return false
		}
	}

	m.focused = false
	if m.rooted {
		m.container.SetTabIndex(m.originalTabIndex)
	}
	m.log.Debug("focus left container")
	return true
}

// NavOptions tunes a single FocusNext or FocusPrev call.
type NavOptions struct {
	// UseTarget locates the origin by Event.Target instead of
	// Event.CurrentTarget.
	UseTarget bool
	// Boundary receives focus when traversal runs past either end.
	Boundary Element
	// Offset is the number of candidates to move. Zero means one.
	Offset int
}

// FocusNext moves focus forward from the event's origin and returns the
// element that received focus, or nil when nothing moved.
func (m *Manager) FocusNext(ev *Event, opts NavOptions) Element {
	candidates, origin, ok := m.prepareNav(ev, opts)
	if !ok {
		return nil
	}
	next := origin + offset(opts)

	var target Element
	switch {
	case next < len(candidates):
		target = candidates[next]
	case opts.Boundary != nil:
		opts.Boundary.Focus()
		m.storeLast(nil)
		return opts.Boundary
	case m.wrap:
		target = candidates[0]
	default:
		target = candidates[len(candidates)-1]
	}
	target.Focus()
	m.storeLast(target)
	return target
}

// FocusPrev moves focus backward from the event's origin and returns the
// element that received focus, or nil when nothing moved.
func (m *Manager) FocusPrev(ev *Event, opts NavOptions) Element {
	candidates, origin, ok := m.prepareNav(ev, opts)
	if !ok {
		return nil
	}
	prev := origin - offset(opts)

	var target Element
	switch {
	case prev >= 0:
		target = candidates[prev]
	case opts.Boundary != nil:
		opts.Boundary.Focus()
		m.storeLast(nil)
		return opts.Boundary
	case m.selfFocusable:
		m.container.Focus()
		m.storeLast(nil)
		return m.container
	case m.wrap:
		target = candidates[len(candidates)-1]
	default:
		target = candidates[0]
	}
	target.Focus()
	m.storeLast(target)
	return target
}

// prepareNav computes the candidates and the origin's index for a
// traversal request. It rejects empty sets and platform shortcuts and
// prevents the event's default otherwise.
func (m *Manager) prepareNav(ev *Event, opts NavOptions) ([]Element, int, bool) {
	candidates := m.Candidates()
	if len(candidates) == 0 {
		return nil, 0, false
	}
	if ev.HasPlatformModifier() {
		return nil, 0, false
	}
	origin := ev.CurrentTarget
	if opts.UseTarget {
		origin = ev.Target
	}
	ev.PreventDefault()
	return candidates, indexOf(candidates, origin), true
}

// FocusBySelector focuses the first descendant matching selector and
// remembers it. It returns the element, or nil when nothing matched.
func (m *Manager) FocusBySelector(selector string) Element {
	if m.container == nil {
		return nil
	}
	el := m.container.Query(selector)
	if el == nil {
		return nil
	}
	m.FocusElement(el)
	return el
}

// FocusElement focuses el and remembers it.
func (m *Manager) FocusElement(el Element) {
	if el == nil {
		return
	}
	m.storeLast(el)
	el.Focus()
}

// FocusOnLast re-focuses the remembered element. If it has been detached,
// the candidate at the remembered position is used instead.
func (m *Manager) FocusOnLast() Element {
	if m.last == nil {
		return nil
	}
	if m.last.Attached() {
		m.last.Focus()
		return m.last
	}
	if m.lastIndex < 0 {
		return nil
	}
	candidates := m.Candidates()
	if m.lastIndex >= len(candidates) {
		return nil
	}
	el := candidates[m.lastIndex]
	el.Focus()
	m.storeLast(el)
	return el
}

// ResetLastFocused forgets the remembered element.
func (m *Manager) ResetLastFocused() {
	m.storeLast(nil)
}

// RegisterAutoFocus remembers el without focusing it, so the next time
// focus enters the container it lands there.
func (m *Manager) RegisterAutoFocus(el Element) {
	if el == nil {
		return
	}
	m.storeLast(el)
}

func (m *Manager) storeLast(el Element) {
	m.last = el
	m.lastIndex = -1
	if el == nil || m.container == nil {
		return
	}
	m.lastIndex = indexOf(m.Candidates(), el)
}

func (m *Manager) hasInitial() bool {
	return m.initialElement != nil || len(m.initial) > 0
}

func (m *Manager) resolveInitial() Element {
	if m.initialElement != nil {
		return m.initialElement
	}
	for _, sel := range m.initial {
		if el := m.container.Query(sel); el != nil {
			return el
		}
	}
	return nil
}

func offset(opts NavOptions) int {
	if opts.Offset <= 0 {
		return 1
	}
	return opts.Offset
}

func indexOf(candidates []Element, el Element) int {
	if el == nil {
		return -1
	}
	for i, c := range candidates {
		if c == el {
			return i
		}
	}
	return -1
}

func describe(el Element) string {
	if s, ok := el.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", el)
}
