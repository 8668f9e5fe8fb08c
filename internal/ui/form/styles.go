package form

import (
	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/ui/styles"
)

// Style functions that return styles based on current theme
// These are functions instead of variables to pick up theme changes

// Layout of BorderStyle, used to map mouse coordinates onto content.
const (
	borderTop  = 1 // margin
	borderLeft = 3 // border + padding
)

// BorderStyle wraps the entire form (left border only)
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Primary).
		MarginTop(borderTop).
		MarginBottom(1).
		PaddingLeft(borderLeft - 1).
		PaddingRight(2)
}

// TitleStyle for the form title
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// LabelStyle for a widget label
func LabelStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(styles.Accent)
	}
	return lipgloss.NewStyle().Foreground(styles.Normal)
}

// StatusStyle for the last committed value
func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Success)
}

// SummaryLabelStyle for summary field labels
func SummaryLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// SummaryValueStyle for summary field values
func SummaryValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}
