// Package dropdown is a dropdown menu widget: a toggle button and a menu
// of actions.
//
// Open state lives in a disclosure.State. Unlike the select box, the menu
// moves real focus: every item is a navigation candidate of a
// focus.Manager that owns the menu, so arrow keys walk the enabled items
// and re-opening the menu returns to the item used last.
package dropdown

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/disclosure"
	"github.com/raphi011/tuikit/internal/focus"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/form"
	"github.com/raphi011/tuikit/internal/ui/node"
)

// Model is a dropdown menu widget.
type Model struct {
	id      string
	title   string
	label   string
	entries disclosure.MergedOptionSet
	chosen  string

	onSelect func(value string)

	state disclosure.State
	fm    *focus.Manager
	keys  KeyMap
	log   *log.Logger

	root   *node.Node
	toggle *node.Node
	menu   *node.Node
	items  map[string]*node.Node
	unbind []func()
}

// New creates a dropdown whose toggle shows label. Entries are built with
// disclosure.Item and disclosure.Divider; set Disabled on an entry to keep
// it visible but inert.
func New(id, title, label string, entries ...disclosure.Entry) *Model {
	m := &Model{
		id:      id,
		title:   title,
		label:   label,
		entries: disclosure.Merge(nil, entries),
		state:   disclosure.NewState(nil),
		keys:    DefaultKeyMap(),
		log:     log.Discard(),
		root:    node.New(id, "dropdown"),
		toggle:  node.New(id+"-toggle", "dropdown-toggle"),
		menu:    node.New(id+"-menu", "dropdown-menu"),
		items:   make(map[string]*node.Node),
	}
	m.toggle.SetTabIndex(0)
	m.root.Append(m.toggle, m.menu)

	for i, e := range m.entries {
		if e.Kind == disclosure.KindDivider {
			m.menu.Append(node.New(fmt.Sprintf("%s-divider-%d", id, i), "dropdown-divider"))
			continue
		}
		n := node.Nav(fmt.Sprintf("%s-item-%d", id, i), "dropdown-item").WithValue(e.Option.Value)
		n.SetDisabled(e.Disabled)
		m.menu.Append(n)
		m.items[e.Option.Value] = n
	}

	m.fm = focus.New(m.menu)
	m.sync()
	return m
}

// WithConfig applies the [focus] section of the config.
func (m *Model) WithConfig(cfg config.FocusConfig) *Model {
	m.fm.WithWrap(cfg.Wrap)
	return m
}

// WithWrap enables or disables wrap-around in the menu. Default true.
func (m *Model) WithWrap(wrap bool) *Model {
	m.fm.WithWrap(wrap)
	return m
}

// WithLogger sets the logger for state transitions and focus decisions.
func (m *Model) WithLogger(l *log.Logger) *Model {
	if l != nil {
		m.log = l
		m.fm.WithLogger(l)
	}
	return m
}

// OnSelect sets the callback for items without their own handler.
func (m *Model) OnSelect(fn func(value string)) *Model {
	m.onSelect = fn
	return m
}

func (m *Model) ID() string              { return m.id }
func (m *Model) Title() string           { return m.title }
func (m *Model) Node() *node.Node        { return m.root }
func (m *Model) Value() string           { return m.chosen }
func (m *Model) State() disclosure.State { return m.state }
func (m *Model) Manager() *focus.Manager { return m.fm }

// Item returns the node of the entry with value, or nil.
func (m *Model) Item(value string) *node.Node { return m.items[value] }

// Attach subscribes the widget and its menu manager to doc.
func (m *Model) Attach(doc *node.Document) {
	m.Detach()
	m.unbind = append(m.unbind,
		node.Bind(doc, m.root, m.handleFocus, m.handleBlur),
		node.Bind(doc, m.menu,
			func(ev *focus.Event) { m.fm.ReceiveFocus(ev) },
			func(ev *focus.Event) { m.fm.ReceiveBlur(ev) },
		),
		doc.Subscribe(func(_, next *node.Node) { m.mirror(next) }),
	)
}

// Detach releases every subscription made by Attach.
func (m *Model) Detach() {
	for _, fn := range m.unbind {
		fn()
	}
	m.unbind = nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) handleFocus(*focus.Event) {
	m.dispatch(disclosure.Focus())
}

func (m *Model) handleBlur(*focus.Event) {
	m.dispatch(disclosure.Blur(nil))
}

// mirror keeps the highlight on the focused item.
func (m *Model) mirror(active *node.Node) {
	if active == nil || !m.menu.Contains(active) || !active.IsNavTarget() {
		return
	}
	if m.state.IsOpen && m.state.Highlighted != active.Value {
		m.dispatch(disclosure.Highlight(active.Value))
	}
}

// Update handles key presses while focus is on the toggle or in the menu.
func (m *Model) Update(msg tea.Msg) (tea.Cmd, form.Result) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.state.IsFocused {
		return nil, form.Ignored
	}
	active := m.toggle.Document().Active()

	if m.state.IsOpen && key.Matches(kmsg, m.keys.Close) {
		m.close()
		return nil, form.Handled
	}

	if active == m.toggle {
		switch {
		case !m.state.IsOpen && key.Matches(kmsg, m.keys.Open):
			m.open()
			m.enterMenu()
			return nil, form.Handled
		case m.state.IsOpen && (key.Matches(kmsg, m.keys.Next) || key.Matches(kmsg, m.keys.Prev)):
			m.enterMenu()
			return nil, form.Handled
		case m.state.IsOpen && key.Matches(kmsg, m.keys.Activate):
			m.close()
			return nil, form.Handled
		}
		return nil, form.Ignored
	}

	if active == nil || !m.menu.Contains(active) {
		return nil, form.Ignored
	}
	ev := node.KeyEvent(kmsg, active, active)
	switch {
	case key.Matches(kmsg, m.keys.Next):
		m.fm.FocusNext(ev, focus.NavOptions{})
		return nil, form.Handled
	case key.Matches(kmsg, m.keys.Prev):
		m.fm.FocusPrev(ev, focus.NavOptions{})
		return nil, form.Handled
	case key.Matches(kmsg, m.keys.Activate):
		return nil, m.activate(active.Value)
	}
	return nil, form.Ignored
}

// open opens the menu seeded with the chosen value while it is still a
// selectable entry.
func (m *Model) open() {
	seed := ""
	if e, ok := m.entries.Find(m.chosen); ok && e.Selectable() {
		seed = m.chosen
	}
	m.dispatch(disclosure.Open(seed))
}

// enterMenu moves focus into the open menu. The item used last wins;
// otherwise focus lands on the highlighted item, or the first enabled one.
func (m *Model) enterMenu() {
	if m.fm.LastFocused() == nil {
		if n := m.items[m.state.Highlighted]; n != nil {
			n.Focus()
			return
		}
	}
	m.menu.Focus()
}

// close closes the menu and returns focus to the toggle.
func (m *Model) close() {
	m.toggle.Focus()
	m.dispatch(disclosure.Close())
}

// activate runs the entry with value. Disabled entries and values not in
// the menu do nothing. Items with their own handler always run it; the
// select callback fires only when the chosen value changes.
func (m *Model) activate(value string) form.Result {
	entry, ok := m.entries.Find(value)
	if !ok || !entry.Selectable() {
		m.log.Debug("activation ignored", "dropdown", m.id, "value", value)
		return form.Handled
	}

	m.fm.ResetLastFocused()
	m.toggle.Focus()
	m.dispatch(disclosure.Select(nil))

	switch {
	case entry.HasTrigger():
		m.chosen = value
		entry.OnTrigger()
	case value == m.chosen:
		return form.Handled
	default:
		m.chosen = value
		if m.onSelect != nil {
			m.onSelect(value)
		}
	}
	return form.Committed
}

// Click toggles the menu, as a press on the toggle does.
func (m *Model) Click() {
	if m.toggle.Document() != nil && !m.toggle.IsActive() {
		m.toggle.Focus()
	}
	if m.state.IsOpen {
		m.dispatch(disclosure.Close())
		return
	}
	m.open()
	m.dispatch(disclosure.Mouse())
}

// PointerDownItem activates the entry with value.
func (m *Model) PointerDownItem(value string) form.Result {
	if !m.state.IsOpen {
		return form.Ignored
	}
	return m.activate(value)
}

// PointerDown routes a press to the toggle or to the menu row under it.
func (m *Model) PointerDown(_, y int) (tea.Cmd, form.Result) {
	if y < toggleHeight {
		m.Click()
		return nil, form.Handled
	}
	i := y - toggleHeight - 1
	if !m.state.IsOpen || i < 0 || i >= len(m.entries) {
		return nil, form.Ignored
	}
	e := m.entries[i]
	if e.Kind == disclosure.KindDivider {
		return nil, form.Handled
	}
	return nil, m.PointerDownItem(e.Option.Value)
}

// PointerMove marks the last interaction as pointer-based.
func (m *Model) PointerMove(_, _ int) {
	if m.state.IsKeyboard {
		m.dispatch(disclosure.Mouse())
	}
}

// Help returns the bindings for the current state.
func (m *Model) Help() []key.Binding {
	if m.state.IsOpen {
		return []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Activate, m.keys.Close}
	}
	return []key.Binding{m.keys.Open}
}

func (m *Model) dispatch(a disclosure.Action) {
	prev := m.state
	next := disclosure.Reduce(prev, a)
	if prev.IsOpen && !next.IsOpen {
		next = disclosure.Reduce(next, disclosure.HighlightReset())
	}
	m.state = next
	m.log.Debug("dropdown transition", "dropdown", m.id, "action", a.Type,
		"open", next.IsOpen, "highlighted", next.Highlighted)
	m.sync()
}

// sync projects the state onto the node tree.
func (m *Model) sync() {
	s := m.state
	m.root.ToggleClass("is-open", s.IsOpen)
	m.root.ToggleClass("is-focused", s.IsFocused)
	m.root.ToggleClass("is-keyboard", s.IsKeyboard)
	m.toggle.WithAttr("expanded", fmt.Sprint(s.IsOpen))
	m.menu.SetHidden(!s.IsOpen)
	for v, n := range m.items {
		n.ToggleClass("is-focused", v == s.Highlighted)
	}
}
