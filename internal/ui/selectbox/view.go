package selectbox

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/disclosure"
	"github.com/raphi011/tuikit/internal/ui/styles"
)

// triggerHeight is the rendered height of the trigger: one line of content
// plus the top and bottom border.
const triggerHeight = 3

const noResults = "No results found"

// row is one line of the open list. A nil entry is the "no results" line.
type row struct {
	entry *disclosure.Entry
}

// rows lays out the open list: filtered options, the "no results" line
// when the filter left nothing, then the dynamic entries.
func (m *Model) rows() []row {
	merged := m.Merged()
	out := make([]row, 0, len(merged)+1)
	nOpts := len(m.state.FilteredOptions)
	for i := range merged {
		if i == nOpts && nOpts == 0 {
			out = append(out, row{})
		}
		out = append(out, row{entry: &merged[i]})
	}
	if nOpts == 0 && len(merged) == 0 {
		out = append(out, row{})
	}
	return out
}

func (m *Model) renderRow(r row) string {
	sym := styles.CurrentSymbols()
	if r.entry == nil {
		return styles.MutedStyle.Render(sym.NoResults + " " + noResults)
	}
	e := r.entry
	if e.Kind == disclosure.KindDivider {
		return styles.MutedStyle.Render(strings.Repeat(sym.Divider, max(1, m.width-4)))
	}

	label := e.Option.Label
	if label == "" {
		label = e.Option.Value
	}
	if e.HasTrigger() {
		label = sym.Trigger + " " + label
	}
	if e.Option.Value == m.value {
		label += " " + sym.Selected
	}

	cursor := "  "
	style := styles.NormalStyle
	switch {
	case e.Disabled:
		style = styles.DisabledStyle
	case e.Option.Value == m.state.Highlighted:
		cursor = sym.Cursor + " "
		style = styles.HighlightStyle
		if !m.state.IsKeyboard {
			style = style.Bold(false)
		}
	case e.Option.Value == m.value:
		style = styles.SelectedStyle
	}
	return cursor + style.Render(label)
}

// Label returns the text the trigger shows: the selected option's label,
// the raw value when it is not an option, or the first option's label
// when nothing is selected.
func (m *Model) Label() string {
	if i := disclosure.IndexOf(m.options, m.value); i >= 0 {
		return m.options[i].Label
	}
	if m.value != "" {
		return m.value
	}
	if len(m.options) > 0 {
		return m.options[0].Label
	}
	return ""
}

// View renders the trigger and, while open, the list.
func (m *Model) View() string {
	sym := styles.CurrentSymbols()

	var content string
	switch {
	case m.searchable && m.state.Filter != "":
		content = m.input.View()
	case m.searchable && m.state.IsFocused:
		content = m.Label() + " " + m.input.View()
	default:
		content = m.Label()
	}
	if m.disabled || m.readOnly {
		content = styles.MutedStyle.Render(content)
	}

	arrow := sym.Closed
	if m.menuVisible() {
		arrow = sym.Open
	}

	inner := max(1, m.width-5)
	line := lipgloss.NewStyle().Width(inner).MaxWidth(inner).Render(content) + " " + arrow

	trigger := styles.TriggerStyle
	if m.state.IsFocused {
		trigger = styles.TriggerFocusedStyle
	}
	view := trigger.Render(line)

	if !m.menuVisible() {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, styles.MenuStyle.Render(m.menu.View()))
}
