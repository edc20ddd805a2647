package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewWatchSpinner creates the moon-phase spinner shown while waiting for
// appearance changes, drawn in the theme's accent.
func NewWatchSpinner(theme *Theme) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Moon),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}
