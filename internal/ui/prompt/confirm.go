// Package prompt provides a one-line yes/no confirmation for CLI commands
// that are about to overwrite something.
package prompt

import (
	"context"
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tuikit/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var defaultConfirmKeys = confirmKeys{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N", "enter")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c", "q", "esc")),
}

type confirmModel struct {
	prompt    string
	keys      confirmKeys
	confirmed bool
	done      bool
	cancelled bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt, keys: defaultConfirmKeys}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, m.keys.Yes):
		m.confirmed = true
	case key.Matches(kmsg, m.keys.No):
		// enter defaults to no
		m.confirmed = false
	case key.Matches(kmsg, m.keys.Cancel):
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s ", m.prompt, styles.MutedStyle.Render("[y/N]")))
}

// Confirm shows a yes/no prompt on out and returns the user's choice.
// The default answer is "no" if the user presses enter without input.
func Confirm(ctx context.Context, out io.Writer, prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(newConfirmModel(prompt),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("run prompt: %w", err)
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
