package form

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/ui/node"
)

// mockWidget is a minimal Widget for testing form orchestration. It holds
// one tab stop, commits on enter and consumes esc only while dirty.
type mockWidget struct {
	id    string
	title string
	value string
	dirty bool
	lines int

	root     *node.Node
	attached *node.Document
	keys     []string
	clicks   [][2]int
	moves    int
	pending  tea.Cmd
}

type mockMsg struct{}

func newMockWidget(id string) *mockWidget {
	root := node.New(id)
	root.SetTabIndex(0)
	return &mockWidget{id: id, title: strings.ToUpper(id), root: root, lines: 1}
}

func (w *mockWidget) ID() string                { return w.id }
func (w *mockWidget) Title() string             { return w.title }
func (w *mockWidget) Node() *node.Node          { return w.root }
func (w *mockWidget) Attach(doc *node.Document) { w.attached = doc }
func (w *mockWidget) Detach()                   { w.attached = nil }
func (w *mockWidget) Init() tea.Cmd             { return nil }
func (w *mockWidget) Help() []key.Binding       { return nil }
func (w *mockWidget) Value() string             { return w.value }
func (w *mockWidget) PointerMove(_, _ int)      { w.moves++ }
func (w *mockWidget) View() string              { return strings.Repeat(w.title+"\n", w.lines-1) + w.title }

func (w *mockWidget) Scheduled() tea.Cmd {
	cmd := w.pending
	w.pending = nil
	return cmd
}

func (w *mockWidget) Update(msg tea.Msg) (tea.Cmd, Result) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if _, ok := msg.(mockMsg); ok {
			w.keys = append(w.keys, "mock")
		}
		return nil, Ignored
	}
	w.keys = append(w.keys, kmsg.String())
	switch kmsg.String() {
	case "enter":
		w.value = w.id + "-value"
		return nil, Committed
	case "esc":
		if w.dirty {
			w.dirty = false
			return nil, Handled
		}
	}
	return nil, Ignored
}

func (w *mockWidget) PointerDown(x, y int) (tea.Cmd, Result) {
	w.clicks = append(w.clicks, [2]int{x, y})
	return nil, Committed
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func newTestForm(ids ...string) (*Form, []*mockWidget) {
	f := New("Test")
	var ws []*mockWidget
	for _, id := range ids {
		w := newMockWidget(id)
		f.Add(w)
		ws = append(ws, w)
	}
	return f, ws
}

func TestForm_Add(t *testing.T) {
	f, ws := newTestForm("a", "b")

	if ws[0].attached != f.Document() {
		t.Error("expected widget to be attached to the form document")
	}
	if !ws[1].Node().Attached() {
		t.Error("expected container to be part of the document")
	}
	if f.Widget("b") != ws[1] {
		t.Error("expected lookup by id")
	}
	if f.Widget("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestForm_InitFocusesFirstStop(t *testing.T) {
	f, ws := newTestForm("a", "b")
	f.Init()

	if f.Focused() != ws[0] {
		t.Errorf("focused = %v, want a", f.Focused())
	}
}

func TestForm_TabNavigation(t *testing.T) {
	f, ws := newTestForm("a", "b", "c")
	f.Init()

	f.Update(keyMsg("tab"))
	if f.Focused() != ws[1] {
		t.Fatalf("after tab focused = %v, want b", f.Focused())
	}
	f.Update(keyMsg("tab"))
	f.Update(keyMsg("tab"))
	if f.Focused() != ws[0] {
		t.Errorf("tab should wrap to a, got %v", f.Focused())
	}
	f.Update(keyMsg("shift+tab"))
	if f.Focused() != ws[2] {
		t.Errorf("shift+tab should wrap to c, got %v", f.Focused())
	}
	for _, w := range ws {
		if len(w.keys) != 0 {
			t.Errorf("widget %s received navigation keys: %v", w.id, w.keys)
		}
	}
}

func TestForm_KeysGoToFocusedWidget(t *testing.T) {
	f, ws := newTestForm("a", "b")
	f.Init()
	f.Update(keyMsg("tab"))
	f.Update(keyMsg("x"))

	if len(ws[0].keys) != 0 {
		t.Errorf("unfocused widget got keys %v", ws[0].keys)
	}
	if len(ws[1].keys) != 1 || ws[1].keys[0] != "x" {
		t.Errorf("focused widget keys = %v, want [x]", ws[1].keys)
	}
}

func TestForm_Commit(t *testing.T) {
	f, ws := newTestForm("a", "b")
	f.Init()

	if f.Committed() != nil {
		t.Error("expected nothing committed initially")
	}
	f.Update(keyMsg("enter"))
	if f.Committed() != ws[0] {
		t.Fatalf("committed = %v, want a", f.Committed())
	}
	if v := f.View().Content; !strings.Contains(v, "a-value") {
		t.Errorf("expected status line with committed value, got:\n%s", v)
	}

	f.Remove("a")
	if f.Committed() != nil {
		t.Error("expected commit to be forgotten with its widget")
	}
}

func TestForm_Escape(t *testing.T) {
	t.Run("widget consumes esc first", func(t *testing.T) {
		f, ws := newTestForm("a")
		f.Init()
		ws[0].dirty = true

		_, cmd := f.Update(keyMsg("esc"))
		if f.done {
			t.Error("expected form to stay open while the widget had something to clear")
		}
		if cmd != nil {
			if _, ok := cmd().(tea.QuitMsg); ok {
				t.Error("expected no quit")
			}
		}

		f.Update(keyMsg("esc"))
		if !f.done {
			t.Error("expected unconsumed esc to finish the form")
		}
		if f.IsCancelled() {
			t.Error("esc is not a cancel")
		}
	})

	t.Run("esc without focus finishes", func(t *testing.T) {
		f, _ := newTestForm("a")
		f.Update(keyMsg("esc"))
		if !f.done {
			t.Error("expected form to finish")
		}
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		f, _ := newTestForm("a")
		f.Init()
		f.Update(keyMsg("ctrl+c"))
		if !f.IsCancelled() {
			t.Error("expected cancelled")
		}
	})
}

func TestForm_TerminalBlur(t *testing.T) {
	f, _ := newTestForm("a")
	f.Init()

	f.Update(tea.BlurMsg{})
	if f.Focused() != nil {
		t.Error("expected terminal blur to drop focus")
	}
}

func TestForm_Broadcast(t *testing.T) {
	f, ws := newTestForm("a", "b")
	f.Update(mockMsg{})

	for _, w := range ws {
		if len(w.keys) != 1 {
			t.Errorf("widget %s did not receive the broadcast", w.id)
		}
	}
}

func TestForm_Scheduled(t *testing.T) {
	f, ws := newTestForm("a")
	ran := false
	ws[0].pending = func() tea.Msg { ran = true; return nil }

	_, cmd := f.Update(mockMsg{})
	if cmd == nil {
		t.Fatal("expected scheduled command to be returned")
	}
	runAll(cmd)
	if !ran {
		t.Error("expected scheduled command to run")
	}
}

// runAll executes cmd and any batch it returns.
func runAll(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runAll(c)
		}
	}
}

func TestForm_MouseHit(t *testing.T) {
	f, ws := newTestForm("a", "b")
	ws[0].lines = 3
	f.Init()
	f.View()

	// title, blank, label a, 3 rows of a, blank, label b, row of b
	bTop := 2 + 1 + 3 + 1 + 1
	f.Update(tea.MouseClickMsg{X: borderLeft + 4, Y: borderTop + bTop})
	if len(ws[1].clicks) != 1 || ws[1].clicks[0] != [2]int{4, 0} {
		t.Fatalf("b clicks = %v, want [[4 0]]", ws[1].clicks)
	}
	if f.Committed() != ws[1] {
		t.Error("expected pointer commit to be recorded")
	}

	f.Update(tea.MouseClickMsg{X: borderLeft, Y: borderTop + 2 + 1 + 2})
	if len(ws[0].clicks) != 1 || ws[0].clicks[0] != [2]int{0, 2} {
		t.Errorf("a clicks = %v, want [[0 2]]", ws[0].clicks)
	}

	f.Update(tea.MouseMotionMsg{X: borderLeft, Y: borderTop + bTop})
	if ws[1].moves != 1 {
		t.Errorf("moves = %d, want 1", ws[1].moves)
	}

	f.Update(tea.MouseClickMsg{X: 0, Y: 0})
	if len(ws[0].clicks)+len(ws[1].clicks) != 2 {
		t.Error("click on the title hit a widget")
	}
}

func TestForm_Remove(t *testing.T) {
	f, ws := newTestForm("a", "b", "c")
	f.Init()

	f.Remove("a")
	if ws[0].attached != nil {
		t.Error("expected removed widget to be detached")
	}
	if ws[0].Node().Attached() {
		t.Error("expected container to leave the document")
	}
	if f.Focused() != nil {
		t.Error("focus inside the removed widget should be dropped")
	}
	if f.Widget("c") != ws[2] {
		t.Error("expected index to be rebuilt")
	}
	f.Update(keyMsg("tab"))
	if f.Focused() != ws[1] {
		t.Errorf("focused = %v, want b", f.Focused())
	}
}

func TestForm_RunWithoutWidgets(t *testing.T) {
	_, err := New("empty").Run(t.Context(), nil)
	if err == nil {
		t.Error("expected error for empty form")
	}
}

func TestForm_Summary(t *testing.T) {
	f, ws := newTestForm("a", "b")
	ws[1].value = "chosen"

	s := f.Summary()
	if !strings.Contains(s, "A: ") || !strings.Contains(s, "chosen") {
		t.Errorf("unexpected summary:\n%s", s)
	}
}
