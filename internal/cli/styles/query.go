package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/systheme/pkg/theme"
)

// QueryField is one setting read from the system.
type QueryField struct {
	Name  string
	Icon  string
	Value string
	Err   error
}

// QueryRenderer renders the result of querying each setting.
type QueryRenderer struct {
	theme *Theme
}

// NewQueryRenderer creates a query renderer with the given theme.
func NewQueryRenderer(theme *Theme) *QueryRenderer {
	return &QueryRenderer{theme: theme}
}

// Render renders one line per field, values or the reason they are missing.
func (r *QueryRenderer) Render(fields []QueryField) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Name))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, r.renderField(f, width))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s System appearance", r.theme.Highlight.Render(IconDesktop)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *QueryRenderer) renderField(f QueryField, width int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	name := r.theme.Subtle.Render(f.Name + strings.Repeat(" ", width-lipgloss.Width(f.Name)))

	if f.Err == nil {
		return fmt.Sprintf("%s %s  %s", iconStyle.Render(f.Icon), name, r.theme.Normal.Render(f.Value))
	}

	label, style, icon := r.describe(f.Err)
	return fmt.Sprintf("%s %s  %s", style.Render(icon), name, style.Render(label))
}

// describe maps a query error to a short label.
func (r *QueryRenderer) describe(err error) (string, lipgloss.Style, string) {
	switch {
	case errors.Is(err, theme.ErrUnsupported):
		return "not supported on this platform", r.theme.Subtle, IconInfo
	case errors.Is(err, theme.ErrUnavailable):
		return "not set", r.theme.WarningStyle, IconWarning
	case errors.Is(err, theme.ErrMainThreadRequired):
		return "must be queried from the main thread", r.theme.WarningStyle, IconWarning
	default:
		return err.Error(), r.theme.ErrorStyle, IconX
	}
}

// RenderError renders a standalone error line.
func (r *QueryRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
