// Package tabs is a roving-focus tab strip.
//
// The strip is a single Tab stop. Once focus is inside, Left and Right move
// between the enabled tabs through a focus.Manager, and leaving and
// re-entering the strip lands on the tab used last (initially the active
// one). Activation is separate from focus unless activate-on-focus is set.
package tabs

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/focus"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/form"
	"github.com/raphi011/tuikit/internal/ui/node"
)

// Tab is one tab and its pane.
type Tab struct {
	ID       string
	Title    string
	Content  string
	Disabled bool
	// Loading renders a spinner in place of Content.
	Loading bool
}

// retryMsg re-delivers a focus request that arrived before the strip was
// attached.
type retryMsg struct{ id string }

// Model is a tab strip with its panes.
type Model struct {
	id              string
	title           string
	tabs            []Tab
	active          int
	activateOnFocus bool
	asSections      bool

	onActivate func(index int, tab Tab)

	fm      *focus.Manager
	keys    KeyMap
	log     *log.Logger
	spinner spinner.Model
	retry   func()
	queued  bool

	root   *node.Node
	strip  *node.Node
	nodes  []*node.Node
	spans  []span
	unbind func()
}

// span is the horizontal extent of a rendered tab label.
type span struct{ start, end int }

// New creates a tab strip. The first enabled tab is active.
func New(id, title string, tabs ...Tab) *Model {
	m := &Model{
		id:      id,
		title:   title,
		tabs:    tabs,
		keys:    DefaultKeyMap(),
		log:     log.Discard(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		root:    node.New(id, "tabs-nav"),
		strip:   node.New(id+"-strip", "nav", "tabs"),
	}
	m.strip.SetTabIndex(0)
	m.root.Append(m.strip)

	m.active = -1
	for i, t := range tabs {
		n := node.Nav(fmt.Sprintf("%s-tab-%s", id, t.ID), "tab").WithValue(t.ID)
		n.SetDisabled(t.Disabled)
		if t.Disabled {
			n.AddClass("disabled")
		}
		if m.active < 0 && !t.Disabled {
			m.active = i
		}
		m.strip.Append(n)
		m.nodes = append(m.nodes, n)
	}

	m.fm = focus.New(m.strip).
		WithInitial(".tab.active").
		WithDeferral(func(retry func()) { m.retry = retry })
	m.sync()
	if n := m.activeNode(); n != nil {
		m.fm.RegisterAutoFocus(n)
	}
	return m
}

// WithConfig applies the [tabs] section of the config.
func (m *Model) WithConfig(cfg config.TabsConfig) *Model {
	m.activateOnFocus = cfg.ActivateOnFocus
	return m
}

// WithWrap enables or disables wrap-around at either end. Default true.
func (m *Model) WithWrap(wrap bool) *Model {
	m.fm.WithWrap(wrap)
	return m
}

// WithActivateOnFocus activates tabs as arrow keys reach them.
func (m *Model) WithActivateOnFocus(v bool) *Model {
	m.activateOnFocus = v
	return m
}

// WithAsSections renders the strip as plain section links: it is not a Tab
// stop and arrow keys do nothing. Clicking still activates.
func (m *Model) WithAsSections(v bool) *Model {
	m.asSections = v
	if v {
		m.strip.SetTabIndex(-1)
	} else {
		m.strip.SetTabIndex(0)
	}
	m.strip.ToggleClass("as-sections", v)
	return m
}

// WithActive activates the tab with id. Disabled and unknown ids are
// ignored.
func (m *Model) WithActive(id string) *Model {
	if i := m.indexOf(id); i >= 0 && !m.tabs[i].Disabled {
		m.active = i
		m.sync()
		m.fm.RegisterAutoFocus(m.nodes[i])
	}
	return m
}

// WithLogger sets the logger for activation and focus decisions.
func (m *Model) WithLogger(l *log.Logger) *Model {
	if l != nil {
		m.log = l
		m.fm.WithLogger(l)
	}
	return m
}

// OnActivate sets the callback fired when the active tab changes.
func (m *Model) OnActivate(fn func(index int, tab Tab)) *Model {
	m.onActivate = fn
	return m
}

func (m *Model) ID() string              { return m.id }
func (m *Model) Title() string           { return m.title }
func (m *Model) Node() *node.Node        { return m.root }
func (m *Model) Manager() *focus.Manager { return m.fm }

// Active returns the index of the active tab, or -1 when every tab is
// disabled.
func (m *Model) Active() int { return m.active }

// Value returns the id of the active tab.
func (m *Model) Value() string {
	if m.active < 0 {
		return ""
	}
	return m.tabs[m.active].ID
}

// Tab returns the node of the tab with id, or nil.
func (m *Model) Tab(id string) *node.Node {
	if i := m.indexOf(id); i >= 0 {
		return m.nodes[i]
	}
	return nil
}

// Attach wires the strip's focus manager to doc. Sections get no focus
// handling.
func (m *Model) Attach(doc *node.Document) {
	m.Detach()
	if m.asSections {
		return
	}
	m.unbind = node.Bind(doc, m.strip,
		func(ev *focus.Event) { m.fm.ReceiveFocus(ev) },
		func(ev *focus.Event) { m.fm.ReceiveBlur(ev) },
	)
}

// Detach releases the focus binding.
func (m *Model) Detach() {
	if m.unbind != nil {
		m.unbind()
		m.unbind = nil
	}
}

// Focus asks the strip to take focus. A request made before the strip is
// attached is retried once through Scheduled.
func (m *Model) Focus() {
	if m.asSections {
		return
	}
	m.fm.ReceiveFocus(&focus.Event{Target: m.strip, CurrentTarget: m.strip})
}

// Scheduled returns the pending focus retry once.
func (m *Model) Scheduled() tea.Cmd {
	if m.retry == nil || m.queued {
		return nil
	}
	m.queued = true
	id := m.id
	return func() tea.Msg { return retryMsg{id: id} }
}

// SetLoading toggles the spinner on the pane of the tab with id.
func (m *Model) SetLoading(id string, loading bool) tea.Cmd {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}
	was := m.loading()
	m.tabs[i].Loading = loading
	if loading && !was {
		return m.spinner.Tick
	}
	return nil
}

// SetContent replaces the pane content of the tab with id.
func (m *Model) SetContent(id, content string) {
	if i := m.indexOf(id); i >= 0 {
		m.tabs[i].Content = content
	}
}

func (m *Model) Init() tea.Cmd {
	if m.loading() {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Cmd, form.Result) {
	switch msg := msg.(type) {
	case retryMsg:
		if msg.id != m.id || m.retry == nil {
			return nil, form.Ignored
		}
		retry := m.retry
		m.retry, m.queued = nil, false
		retry()
		return nil, form.Handled

	case spinner.TickMsg:
		if !m.loading() {
			return nil, form.Ignored
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd, form.Handled

	case tea.KeyPressMsg:
		return nil, m.handleKey(msg)
	}
	return nil, form.Ignored
}

// handleKey runs only while a tab itself holds focus.
func (m *Model) handleKey(msg tea.KeyPressMsg) form.Result {
	if m.asSections {
		return form.Ignored
	}
	doc := m.strip.Document()
	if doc == nil {
		return form.Ignored
	}
	current := doc.Active()
	i := m.nodeIndex(current)
	if i < 0 {
		return form.Ignored
	}
	ev := node.KeyEvent(msg, current, current)

	var moved focus.Element
	switch {
	case key.Matches(msg, m.keys.Next):
		moved = m.fm.FocusNext(ev, focus.NavOptions{})
	case key.Matches(msg, m.keys.Prev):
		moved = m.fm.FocusPrev(ev, focus.NavOptions{})
	case key.Matches(msg, m.keys.First), key.Matches(msg, m.keys.Last):
		candidates := m.fm.Candidates()
		if len(candidates) == 0 {
			return form.Ignored
		}
		moved = candidates[0]
		if key.Matches(msg, m.keys.Last) {
			moved = candidates[len(candidates)-1]
		}
		m.fm.FocusElement(moved)
	case key.Matches(msg, m.keys.Activate):
		if m.activate(i) {
			return form.Committed
		}
		return form.Handled
	default:
		return form.Ignored
	}

	if moved == nil {
		return form.Ignored
	}
	if m.activateOnFocus {
		if m.activate(m.nodeIndex(node.FromElement(moved))) {
			return form.Committed
		}
	}
	return form.Handled
}

// Click activates tab i the way a pointer press does: the remembered tab is
// forgotten so focus follows the new active tab. The activation callback
// fires even when i is already active.
func (m *Model) Click(i int) form.Result {
	if i < 0 || i >= len(m.tabs) || m.tabs[i].Disabled {
		return form.Handled
	}
	if !m.asSections {
		m.fm.ResetLastFocused()
	}
	changed := i != m.active
	m.active = i
	m.sync()
	m.fire(i)
	if !m.asSections {
		m.nodes[i].Focus()
	}
	if changed {
		return form.Committed
	}
	return form.Handled
}

// PointerDown activates the tab label under x on the strip row.
func (m *Model) PointerDown(x, y int) (tea.Cmd, form.Result) {
	if y != 0 {
		return nil, form.Ignored
	}
	for i, s := range m.spans {
		if x >= s.start && x < s.end {
			return nil, m.Click(i)
		}
	}
	return nil, form.Ignored
}

func (m *Model) PointerMove(_, _ int) {}

// Help returns the strip bindings.
func (m *Model) Help() []key.Binding {
	if m.asSections {
		return nil
	}
	return []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Activate}
}

// activate makes tab i the active one. It reports whether the active tab
// changed; an already active tab is left alone.
func (m *Model) activate(i int) bool {
	if i < 0 || i >= len(m.tabs) || m.tabs[i].Disabled || i == m.active {
		return false
	}
	m.active = i
	m.sync()
	m.fire(i)
	return true
}

func (m *Model) fire(i int) {
	m.log.Debug("tab activated", "tabs", m.id, "tab", m.tabs[i].ID)
	if m.onActivate != nil {
		m.onActivate(i, m.tabs[i])
	}
}

func (m *Model) sync() {
	for i, n := range m.nodes {
		n.ToggleClass("active", i == m.active)
		n.WithAttr("selected", fmt.Sprint(i == m.active))
	}
}

func (m *Model) activeNode() *node.Node {
	if m.active < 0 {
		return nil
	}
	return m.nodes[m.active]
}

func (m *Model) loading() bool {
	for _, t := range m.tabs {
		if t.Loading {
			return true
		}
	}
	return false
}

func (m *Model) indexOf(id string) int {
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) nodeIndex(n *node.Node) int {
	if n == nil {
		return -1
	}
	for i, c := range m.nodes {
		if c == n {
			return i
		}
	}
	return -1
}
