package node

import (
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/focus"
)

// KeyEvent converts a key press delivered while target is focused into a
// focus event whose handler runs on current.
func KeyEvent(msg tea.KeyPressMsg, target, current *Node) *focus.Event {
	return &focus.Event{
		Target:        Element(target),
		CurrentTarget: Element(current),
		Key:           msg.String(),
		Mods:          Modifiers(msg.Mod),
	}
}

// Modifiers maps terminal key modifiers onto focus modifiers. Super and
// hyper both count as the OS key.
func Modifiers(mod tea.KeyMod) focus.Modifiers {
	var m focus.Modifiers
	if mod&tea.ModShift != 0 {
		m |= focus.ModShift
	}
	if mod&tea.ModAlt != 0 {
		m |= focus.ModAlt
	}
	if mod&tea.ModCtrl != 0 {
		m |= focus.ModCtrl
	}
	if mod&tea.ModMeta != 0 {
		m |= focus.ModMeta
	}
	if mod&(tea.ModSuper|tea.ModHyper) != 0 {
		m |= focus.ModOS
	}
	return m
}

// Bind wires document focus changes to a container's focus and blur
// handlers. onFocus runs when the active element moves from outside the
// container (or nowhere) to the container or a descendant; onBlur runs on
// the opposite move. The returned function removes the binding.
func Bind(doc *Document, container *Node, onFocus, onBlur func(*focus.Event)) (unbind func()) {
	return doc.Subscribe(func(prev, next *Node) {
		wasIn := prev != nil && container.containsOrSelf(prev)
		isIn := next != nil && container.containsOrSelf(next)
		switch {
		case isIn && !wasIn && onFocus != nil:
			onFocus(&focus.Event{
				Target:        Element(next),
				CurrentTarget: container,
				RelatedTarget: Element(prev),
			})
		case wasIn && !isIn && onBlur != nil:
			onBlur(&focus.Event{
				Target:        Element(prev),
				CurrentTarget: container,
				RelatedTarget: Element(next),
			})
		}
	})
}
