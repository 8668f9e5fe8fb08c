// Package form hosts interactive widgets in one Bubble Tea program.
//
// A Form owns a node.Document. Every widget contributes a container node
// to it, and focus moves between widgets the way it moves between
// controls of a page: Tab and Shift+Tab walk the document's tab stops,
// and each widget's own focus handling decides where focus lands inside
// it. Key presses go to the widget holding focus; mouse presses go to the
// widget under the pointer.
package form

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/node"
)

// region is the block of content rows a widget occupied in the last frame.
type region struct {
	top, height int
}

// Form orchestrates a set of widgets sharing one focus document.
type Form struct {
	title   string
	widgets []Widget
	index   map[string]int // id -> position
	doc     *node.Document
	keys    KeyMap
	help    help.Model
	log     *log.Logger

	regions   []region
	committed string // id of the widget that committed last
	done      bool
	cancelled bool
	width     int
	height    int
}

// New creates an empty form with the given title.
func New(title string) *Form {
	return &Form{
		title:  title,
		index:  make(map[string]int),
		doc:    node.NewDocument(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		log:    log.Discard(),
		width:  60,
		height: 20,
	}
}

// Add appends a widget and attaches its container to the document.
func (f *Form) Add(w Widget) *Form {
	f.index[w.ID()] = len(f.widgets)
	f.widgets = append(f.widgets, w)
	f.doc.Root().Append(w.Node())
	w.Attach(f.doc)
	return f
}

// Remove detaches a widget by ID. Focus held inside it is dropped.
func (f *Form) Remove(id string) {
	i, ok := f.index[id]
	if !ok {
		return
	}
	w := f.widgets[i]
	f.doc.Root().Remove(w.Node())
	w.Detach()
	f.widgets = append(f.widgets[:i], f.widgets[i+1:]...)
	delete(f.index, id)
	for j := i; j < len(f.widgets); j++ {
		f.index[f.widgets[j].ID()] = j
	}
	if f.committed == id {
		f.committed = ""
	}
}

// WithLogger sets the logger for form events.
func (f *Form) WithLogger(l *log.Logger) *Form {
	if l != nil {
		f.log = l
	}
	return f
}

// Document returns the focus document widgets attach to.
func (f *Form) Document() *node.Document { return f.doc }

// Widget returns a widget by ID.
func (f *Form) Widget(id string) Widget {
	if i, ok := f.index[id]; ok {
		return f.widgets[i]
	}
	return nil
}

// Focused returns the widget whose container holds document focus, or nil.
func (f *Form) Focused() Widget {
	active := f.doc.Active()
	if active == nil {
		return nil
	}
	for _, w := range f.widgets {
		if w.Node() == active || w.Node().Contains(active) {
			return w
		}
	}
	return nil
}

// Committed returns the widget that committed a value last, or nil.
func (f *Form) Committed() Widget {
	return f.Widget(f.committed)
}

// IsCancelled returns true if the form was aborted with ctrl+c.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// Summary renders one "title: value" line per widget.
func (f *Form) Summary() string {
	var b strings.Builder
	for _, w := range f.widgets {
		b.WriteString(SummaryLabelStyle().Render(w.Title()+": ") +
			SummaryValueStyle().Render(w.Value()) + "\n")
	}
	return b.String()
}

// Run executes the form and returns when it is done or cancelled.
// The TUI renders to out so stdout remains available for piping.
func (f *Form) Run(ctx context.Context, out io.Writer) (*Form, error) {
	if len(f.widgets) == 0 {
		return f, fmt.Errorf("form has no widgets")
	}
	if out == nil {
		out = os.Stderr
	}

	// Detect color profile for the output (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(out, os.Environ())

	p := tea.NewProgram(f,
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run form: %w", err)
	}
	return finalModel.(*Form), nil
}

// BubbleTea Model interface

func (f *Form) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.widgets)+1)
	for _, w := range f.widgets {
		cmds = append(cmds, w.Init())
	}
	if f.doc.Active() == nil {
		f.doc.FocusNextStop()
	}
	cmds = append(cmds, f.scheduled())
	return tea.Batch(cmds...)
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := f.update(msg)
	return f, tea.Batch(cmd, f.scheduled())
}

func (f *Form) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		f.help.SetWidth(msg.Width)
		return nil

	case tea.BlurMsg:
		// the terminal lost focus: nothing inside the form keeps it
		f.doc.Blur()
		return nil

	case tea.KeyPressMsg:
		return f.handleKey(msg)

	case tea.MouseClickMsg:
		w, x, y := f.hit(msg.X, msg.Y)
		p, ok := w.(Pointer)
		if !ok {
			return nil
		}
		cmd, result := p.PointerDown(x, y)
		f.record(w, result)
		return cmd

	case tea.MouseMotionMsg:
		w, x, y := f.hit(msg.X, msg.Y)
		if p, ok := w.(Pointer); ok {
			p.PointerMove(x, y)
		}
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(f.widgets))
	for _, w := range f.widgets {
		cmd, _ := w.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *Form) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Quit):
		f.cancelled = true
		f.done = true
		return tea.Quit
	case key.Matches(msg, f.keys.Next):
		f.doc.FocusNextStop()
		return nil
	case key.Matches(msg, f.keys.Prev):
		f.doc.FocusPrevStop()
		return nil
	}

	w := f.Focused()
	if w == nil {
		if key.Matches(msg, f.keys.Cancel) {
			f.done = true
			return tea.Quit
		}
		return nil
	}

	cmd, result := w.Update(msg)
	f.record(w, result)
	// widgets consume esc while they have something to close or clear
	if result == Ignored && key.Matches(msg, f.keys.Cancel) {
		f.done = true
		return tea.Quit
	}
	return cmd
}

func (f *Form) record(w Widget, result Result) {
	if result != Committed {
		return
	}
	f.committed = w.ID()
	f.log.Debug("value committed", "widget", w.ID(), "value", w.Value())
}

// hit maps screen coordinates to the widget rendered there and the
// coordinates relative to its view.
func (f *Form) hit(x, y int) (Widget, int, int) {
	row := y - borderTop
	for i, r := range f.regions {
		if row >= r.top && row < r.top+r.height && i < len(f.widgets) {
			return f.widgets[i], x - borderLeft, row - r.top
		}
	}
	return nil, 0, 0
}

func (f *Form) scheduled() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range f.widgets {
		if s, ok := w.(Scheduler); ok {
			cmds = append(cmds, s.Scheduled())
		}
	}
	return tea.Batch(cmds...)
}

func (f *Form) View() tea.View {
	if f.done {
		return tea.NewView("")
	}

	var b strings.Builder
	row := 0
	write := func(s string) {
		b.WriteString(s)
		row += strings.Count(s, "\n")
	}

	write(TitleStyle().Render(f.title) + "\n\n")

	focused := f.Focused()
	f.regions = f.regions[:0]
	for _, w := range f.widgets {
		write(LabelStyle(w == focused).Render(w.Title()) + "\n")
		view := w.View()
		f.regions = append(f.regions, region{top: row, height: lipgloss.Height(view)})
		write(view + "\n\n")
	}

	if c := f.Committed(); c != nil {
		write(StatusStyle().Render(fmt.Sprintf("%s: %s", c.Title(), c.Value())) + "\n")
	}

	bindings := f.keys.ShortHelp()
	if focused != nil {
		bindings = append(focused.Help(), bindings...)
	}
	b.WriteString(f.help.ShortHelpView(bindings))

	v := tea.NewView(BorderStyle().Render(b.String()))
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	return v
}
