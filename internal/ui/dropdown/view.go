package dropdown

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/disclosure"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// toggleHeight is the rendered height of the toggle including its border.
const toggleHeight = 3

// View renders the toggle and, while open, one menu row per entry.
func (m *Model) View() string {
	sym := styles.CurrentSymbols()

	arrow := sym.Closed
	if m.state.IsOpen {
		arrow = sym.Open
	}
	toggle := styles.TriggerStyle
	if m.state.IsFocused {
		toggle = styles.TriggerFocusedStyle
	}
	label := m.label
	if m.toggle.IsActive() {
		label = styles.Bold.Render(label)
	}
	view := toggle.Render(label + " " + arrow)

	if !m.state.IsOpen {
		return view
	}

	width := 0
	for _, e := range m.entries {
		width = max(width, lipgloss.Width(e.Option.Label)+2)
	}

	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		lines = append(lines, m.renderEntry(i, e, width))
	}
	menu := styles.MenuStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, view, menu)
}

func (m *Model) renderEntry(i int, e disclosure.Entry, width int) string {
	sym := styles.CurrentSymbols()
	if e.Kind == disclosure.KindDivider {
		return styles.MutedStyle.Render(strings.Repeat(sym.Divider, max(1, width)))
	}

	label := e.Option.Label
	if label == "" {
		label = e.Option.Value
	}

	n := m.menu.Children()[i]
	switch {
	case e.Disabled:
		return "  " + styles.DisabledStyle.Render(label)
	case n.IsActive():
		return sym.Cursor + " " + styles.HighlightStyle.Render(label)
	default:
		return "  " + styles.NormalStyle.Render(label)
	}
}
