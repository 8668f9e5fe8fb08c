package tabs

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/ui/styles"
)

// View renders the strip and the active tab's pane. Inactive panes are not
// rendered at all.
func (m *Model) View() string {
	labels := make([]string, 0, len(m.tabs))
	m.spans = m.spans[:0]
	x := 0
	for i, t := range m.tabs {
		style := styles.TabStyle
		switch {
		case t.Disabled:
			style = styles.DisabledStyle.Padding(0, 1)
		case i == m.active:
			style = styles.TabActiveStyle
		}
		if m.nodes[i].IsActive() {
			style = style.Inherit(styles.TabFocusedStyle)
		}
		label := style.Render(t.Title)
		w := lipgloss.Width(label)
		m.spans = append(m.spans, span{start: x, end: x + w})
		labels = append(labels, label)
		x += w + 1
	}
	strip := strings.Join(labels, " ")

	if m.active < 0 {
		return strip
	}
	pane := m.tabs[m.active].Content
	if m.tabs[m.active].Loading {
		pane = m.spinner.View() + " " + styles.MutedStyle.Render("loading")
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, styles.PaneStyle.Render(pane))
}
