package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigPaths lists the files systheme reads and writes.
type ConfigPaths struct {
	ConfigFile string
	SchemaFile string
	LogDir     string
}

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderStatus renders the file locations and the effective settings.
func (r *ConfigRenderer) RenderStatus(paths ConfigPaths, settings [][2]string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), keyStyle.Render(paths.ConfigFile))
	fmt.Fprintf(&sb, "  %s Schema %s\n", iconStyle.Render(IconInfo), keyStyle.Render(paths.SchemaFile))
	fmt.Fprintf(&sb, "  %s Logs   %s\n", iconStyle.Render(IconClock), keyStyle.Render(paths.LogDir))

	if len(settings) > 0 {
		width := 0
		for _, kv := range settings {
			width = max(width, len(kv[0]))
		}
		sb.WriteString("\n")
		for _, kv := range settings {
			fmt.Fprintf(&sb, "    %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, kv[0])), valStyle.Render(kv[1]))
		}
	}

	return sb.String()
}

// RenderSaved renders the confirmation after a setting was written.
func (r *ConfigRenderer) RenderSaved(key, value, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Set %s to %s in %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(key),
		r.theme.Highlight.Render(value),
		r.theme.Subtle.Render(path),
	)
}

// RenderSchemaWritten renders the confirmation after the schema was generated.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
