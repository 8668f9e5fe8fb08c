// Package selectbox is a select box (combobox) widget: a trigger showing
// the current value and a list of options that opens below it.
//
// All open, highlight, filter and selection state lives in a
// disclosure.State and changes only through disclosure.Reduce. The widget
// translates keys, pointer presses and focus changes into actions and
// applies the host policy around them: which value to seed the highlight
// with, two-stage Escape, traversal of the merged option set, and which
// callback an activation fires.
package selectbox

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/disclosure"
	"github.com/raphi011/tuikit/internal/focus"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/form"
	"github.com/raphi011/tuikit/internal/ui/node"
	"github.com/raphi011/tuikit/internal/ui/scroll"
)

const (
	defaultWidth      = 30
	defaultMaxVisible = 8
)

// Model is a select box widget.
type Model struct {
	id      string
	title   string
	options []disclosure.Option
	items   []disclosure.Entry // dynamic entries after the options
	value   string

	disabled   bool
	readOnly   bool
	searchable bool
	maxVisible int
	width      int
	tabIndex   int
	matcher    disclosure.Matcher

	onChange func(value string)
	onFocus  func()
	onBlur   func()

	state   disclosure.State
	keys    KeyMap
	input   textinput.Model
	menu    *viewport.Model
	log     *log.Logger
	pending tea.Cmd

	root   *node.Node // container and tab stop
	search *node.Node // filter field, holds focus while searchable
	list   *node.Node // one child per rendered row, hidden while closed
	unbind func()
}

// New creates a select box over options.
func New(id, title string, options []disclosure.Option) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter"

	m := &Model{
		id:         id,
		title:      title,
		options:    options,
		maxVisible: defaultMaxVisible,
		width:      defaultWidth,
		matcher:    disclosure.Substring,
		state:      disclosure.NewState(options),
		keys:       DefaultKeyMap(),
		input:      ti,
		log:        log.Discard(),
		root:       node.New(id, "select"),
		search:     node.New(id+"-input", "select-input"),
		list:       node.New(id+"-menu", "select-menu"),
	}
	m.root.SetTabIndex(0)
	m.root.Append(m.search, m.list)
	m.menu = scroll.New(m.width, 1, nil)
	m.sync()
	return m
}

// WithValue sets the committed value. Empty means no value.
func (m *Model) WithValue(v string) *Model {
	m.value = v
	m.sync()
	return m
}

// WithItems appends dynamic entries after the options: items with their
// own activation, dividers. They are never filtered.
func (m *Model) WithItems(entries ...disclosure.Entry) *Model {
	m.items = append(m.items, entries...)
	m.sync()
	return m
}

// WithSearchable adds a filter field to the trigger.
func (m *Model) WithSearchable(v bool) *Model {
	m.searchable = v
	m.sync()
	return m
}

// WithDisabled removes the widget from tab order and ignores all input.
func (m *Model) WithDisabled(v bool) *Model {
	m.disabled = v
	m.root.SetDisabled(v)
	m.sync()
	return m
}

// WithReadOnly keeps the widget focusable but ignores input.
func (m *Model) WithReadOnly(v bool) *Model {
	m.readOnly = v
	m.sync()
	return m
}

// WithMaxVisible limits the number of rows the open list shows.
func (m *Model) WithMaxVisible(n int) *Model {
	if n > 0 {
		m.maxVisible = n
	}
	m.sync()
	return m
}

// WithWidth sets the rendered width.
func (m *Model) WithWidth(w int) *Model {
	if w > 0 {
		m.width = w
		m.input.SetWidth(w - 6)
	}
	m.sync()
	return m
}

// WithTabIndex sets the container's tab index. Default 0.
func (m *Model) WithTabIndex(i int) *Model {
	m.tabIndex = i
	m.root.SetTabIndex(i)
	return m
}

// WithMatcher sets the filter used while searchable.
func (m *Model) WithMatcher(fn disclosure.Matcher) *Model {
	if fn != nil {
		m.matcher = fn
	}
	return m
}

// WithConfig applies the [select] section of the config.
func (m *Model) WithConfig(cfg config.SelectConfig) *Model {
	return m.
		WithMatcher(disclosure.MatcherFor(cfg.FilterMode)).
		WithMaxVisible(cfg.MaxVisible).
		WithSearchable(cfg.Searchable)
}

// WithLogger sets the logger for state transitions.
func (m *Model) WithLogger(l *log.Logger) *Model {
	if l != nil {
		m.log = l
	}
	return m
}

// OnChange sets the callback fired when a different value is selected.
func (m *Model) OnChange(fn func(value string)) *Model {
	m.onChange = fn
	return m
}

// OnFocus sets the callback fired when focus enters the widget.
func (m *Model) OnFocus(fn func()) *Model {
	m.onFocus = fn
	return m
}

// OnBlur sets the callback fired when focus leaves the widget.
func (m *Model) OnBlur(fn func()) *Model {
	m.onBlur = fn
	return m
}

func (m *Model) ID() string              { return m.id }
func (m *Model) Title() string           { return m.title }
func (m *Model) Node() *node.Node        { return m.root }
func (m *Model) Value() string           { return m.value }
func (m *Model) State() disclosure.State { return m.state }

// Merged returns the current traversal order: filtered options, then the
// dynamic entries.
func (m *Model) Merged() disclosure.MergedOptionSet {
	return disclosure.Merge(m.state.FilteredOptions, m.items)
}

// Attach subscribes to focus changes of doc.
func (m *Model) Attach(doc *node.Document) {
	m.Detach()
	m.unbind = node.Bind(doc, m.root, m.handleFocus, m.handleBlur)
}

// Detach releases the focus subscription.
func (m *Model) Detach() {
	if m.unbind != nil {
		m.unbind()
		m.unbind = nil
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// Scheduled returns the command produced by the last focus change, if any.
func (m *Model) Scheduled() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

func (m *Model) handleFocus(*focus.Event) {
	if m.disabled || m.readOnly {
		return
	}
	m.dispatch(disclosure.Focus())
	if m.searchable {
		// Shift+Tab from the field must leave the widget, not land on it
		m.root.SetTabIndex(-1)
		m.search.Focus()
		m.pending = m.input.Focus()
	}
	if m.onFocus != nil {
		m.onFocus()
	}
}

// handleBlur runs only when focus leaves the container; moves between the
// container and its filter field never get here.
func (m *Model) handleBlur(*focus.Event) {
	m.root.SetTabIndex(m.tabIndex)
	m.input.Blur()
	if m.onBlur != nil {
		m.onBlur()
	}
	m.dispatch(disclosure.Blur(m.options))
}

// Update handles key presses while the widget holds focus and forwards
// other messages (cursor blink) to the filter field.
func (m *Model) Update(msg tea.Msg) (tea.Cmd, form.Result) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKey(msg)
	}
	if m.searchable && m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd, form.Ignored
	}
	return nil, form.Ignored
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, form.Result) {
	if m.disabled || m.readOnly || !m.state.IsFocused {
		return nil, form.Ignored
	}

	open := m.state.IsOpen
	switch {
	case !open && key.Matches(msg, m.keys.Open):
		m.open()
		return nil, form.Handled

	case open && key.Matches(msg, m.keys.Close):
		m.dispatch(disclosure.Close())
		m.focusControl()
		return nil, form.Handled

	case !open && key.Matches(msg, m.keys.Close):
		if m.state.Filter == "" {
			return nil, form.Ignored
		}
		m.dispatch(disclosure.FilterClear(m.options))
		return nil, form.Handled

	case open && key.Matches(msg, m.keys.Down):
		m.move(1)
		return nil, form.Handled

	case open && key.Matches(msg, m.keys.Up):
		m.move(-1)
		return nil, form.Handled

	case open && key.Matches(msg, m.keys.Choose) && !(m.searchable && msg.Code == tea.KeySpace):
		return nil, m.activate(m.state.Highlighted)
	}

	if m.searchable {
		return m.typeFilter(msg)
	}
	return nil, form.Ignored
}

// typeFilter feeds a key to the filter field and filters when its text
// changed.
func (m *Model) typeFilter(msg tea.KeyPressMsg) (tea.Cmd, form.Result) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.state.Filter {
		m.dispatch(disclosure.Filter(text, m.options, m.matcher))
		return cmd, form.Handled
	}
	return cmd, form.Ignored
}

// open opens the list seeded with the current value, or with nothing when
// the value is not one of the options.
func (m *Model) open() {
	seed := ""
	if i := disclosure.IndexOf(m.options, m.value); i >= 0 {
		seed = m.options[i].Value
	}
	m.dispatch(disclosure.Open(seed))
}

func (m *Model) move(dir int) {
	next, ok := m.Merged().Next(m.state.Highlighted, dir)
	if !ok {
		return
	}
	m.dispatch(disclosure.Highlight(next))
}

// activate commits value. Dynamic entries with their own handler run it
// instead of the change callback; values no longer in the merged set are
// ignored.
func (m *Model) activate(value string) form.Result {
	entry, found := m.Merged().Find(value)
	if value != "" && (!found || !entry.Selectable()) {
		m.log.Debug("activation ignored", "select", m.id, "value", value)
		return form.Handled
	}

	m.dispatch(disclosure.Select(m.options))
	m.focusControl()

	switch {
	case !found:
		return form.Handled
	case entry.HasTrigger():
		entry.OnTrigger()
		return form.Handled
	case entry.Kind != disclosure.KindOption, value == m.value:
		return form.Handled
	}

	m.value = value
	m.sync()
	if m.onChange != nil {
		m.onChange(value)
	}
	return form.Committed
}

// Click toggles the list, as a press on the trigger does.
func (m *Model) Click() {
	if m.disabled {
		return
	}
	if !m.hasFocus() {
		m.root.Focus()
	}
	if m.state.IsOpen {
		m.dispatch(disclosure.Close())
	} else if !m.readOnly {
		m.open()
	}
}

// PointerDownItem activates value. It runs on press, before any focus
// change a release could cause.
func (m *Model) PointerDownItem(value string) form.Result {
	if m.disabled || m.readOnly {
		return form.Ignored
	}
	m.focusControl()
	return m.activate(value)
}

// PointerDown routes a press at (x, y) of the rendered view to the trigger
// or to the list row under it.
func (m *Model) PointerDown(_, y int) (tea.Cmd, form.Result) {
	th := triggerHeight
	if y < th {
		m.Click()
		return nil, form.Handled
	}
	if !m.menuVisible() {
		return nil, form.Ignored
	}
	row := y - th - 1 + m.menu.YOffset()
	rows := m.rows()
	if row < 0 || row >= len(rows) || rows[row].entry == nil {
		return nil, form.Ignored
	}
	return nil, m.PointerDownItem(rows[row].entry.Option.Value)
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
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Close}
	}
	return []key.Binding{m.keys.Open}
}

// hasFocus reports whether document focus is on the container or inside it.
func (m *Model) hasFocus() bool {
	doc := m.root.Document()
	if doc == nil || doc.Active() == nil {
		return false
	}
	return doc.Active() == m.root || m.root.Contains(doc.Active())
}

// focusControl returns focus to the control that owns key input.
func (m *Model) focusControl() {
	if m.searchable {
		m.search.Focus()
		return
	}
	m.root.Focus()
}

func (m *Model) menuVisible() bool {
	return m.state.IsFocused && m.state.IsOpen
}

// dispatch applies a to the state and keeps the derived pieces in line:
// the highlight is dropped when the list closes or when it no longer
// names a selectable entry, and a changed highlight is scrolled into view.
func (m *Model) dispatch(a disclosure.Action) {
	prev := m.state
	next := disclosure.Reduce(prev, a)
	if prev.IsOpen && !next.IsOpen {
		next = disclosure.Reduce(next, disclosure.HighlightReset())
	}
	if next.Highlighted != "" && !disclosure.Merge(next.FilteredOptions, m.items).Contains(next.Highlighted) {
		next = disclosure.Reduce(next, disclosure.HighlightReset())
	}
	m.state = next

	m.log.Debug("select transition", "select", m.id, "action", a.Type,
		"open", next.IsOpen, "highlighted", next.Highlighted, "filter", next.Filter)

	m.sync()
	if next.IsOpen && (!prev.IsOpen || prev.Highlighted != next.Highlighted) {
		m.scrollToHighlight()
	}
}

func (m *Model) scrollToHighlight() {
	for i, r := range m.rows() {
		if r.entry != nil && r.entry.Option.Value == m.state.Highlighted {
			scroll.IntoViewIfNeeded(m.menu, i, 1, false)
			return
		}
	}
}

// sync projects the state onto the node tree, the filter field and the
// list viewport.
func (m *Model) sync() {
	s := m.state
	m.root.ToggleClass("is-searchable", m.searchable)
	m.root.ToggleClass("is-focused", s.IsFocused)
	m.root.ToggleClass("is-open", s.IsOpen)
	m.root.ToggleClass("is-keyboard", s.IsKeyboard)
	m.root.ToggleClass("is-mouse", !s.IsKeyboard)
	m.root.ToggleClass("has-value", m.value != "")
	m.root.ToggleClass("is-disabled", m.disabled)
	m.root.ToggleClass("is-readonly", m.readOnly)
	m.root.WithAttr("expanded", fmt.Sprint(s.IsOpen))
	m.search.SetHidden(!m.searchable)

	if m.input.Value() != s.Filter {
		m.input.SetValue(s.Filter)
	}

	rows := m.rows()
	children := make([]*node.Node, 0, len(rows))
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		children = append(children, m.rowNode(i, r))
		lines = append(lines, m.renderRow(r))
	}
	m.list.ReplaceChildren(children...)
	m.list.SetHidden(!m.menuVisible())

	m.menu.SetWidth(m.width)
	m.menu.SetHeight(max(1, min(m.maxVisible, len(lines))))
	m.menu.SetContentLines(lines)
}

func (m *Model) rowNode(i int, r row) *node.Node {
	n := node.New(fmt.Sprintf("%s-row-%d", m.id, i))
	switch {
	case r.entry == nil:
		n.AddClass("select-noresults")
	case r.entry.Kind == disclosure.KindDivider:
		n.AddClass("select-divider")
	default:
		v := r.entry.Option.Value
		n.AddClass("select-option")
		n.WithValue(v).WithAttr("option-value", v)
		n.ToggleClass("is-focused", v == m.state.Highlighted)
		n.ToggleClass("is-selected", v == m.value)
		n.SetDisabled(r.entry.Disabled)
	}
	return n
}

// Option returns the row node rendering value, or nil.
func (m *Model) Option(value string) *node.Node {
	return m.list.QueryNode(fmt.Sprintf("[option-value=%q]", value))
}
