// Package styles provides shared lipgloss styles for the widgets.
//
// Colors come from the active Theme (see Init). Widgets read the exported
// style variables at render time, so switching themes restyles everything
// on the next frame.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	Primary color.Color = lipgloss.Color("62")
	Accent  color.Color = lipgloss.Color("212")
	Success color.Color = lipgloss.Color("82")
	Error   color.Color = lipgloss.Color("196")
	Muted   color.Color = lipgloss.Color("240")
	Normal  color.Color = lipgloss.Color("252")
	Info    color.Color = lipgloss.Color("244")
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Italic = lipgloss.NewStyle().Italic(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

// Widget styles
var (
	// TriggerStyle is the closed select box or dropdown toggle.
	TriggerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	// TriggerFocusedStyle is the trigger while its widget holds focus.
	TriggerFocusedStyle = TriggerStyle.BorderForeground(Primary)

	// MenuStyle frames an open option list.
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// HighlightStyle marks the highlighted option (keyboard or pointer).
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// SelectedStyle marks the committed value.
	SelectedStyle = lipgloss.NewStyle().Foreground(Success)

	// DisabledStyle renders entries that cannot be chosen.
	DisabledStyle = lipgloss.NewStyle().Foreground(Muted).Strikethrough(true)

	// TabStyle is an inactive tab label.
	TabStyle = lipgloss.NewStyle().Foreground(Normal).Padding(0, 1)

	// TabActiveStyle is the activated tab.
	TabActiveStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Padding(0, 1)

	// TabFocusedStyle is added to whichever tab holds keyboard focus.
	TabFocusedStyle = lipgloss.NewStyle().Underline(true)

	// PaneStyle frames the active tab's content.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)
)
