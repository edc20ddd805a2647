package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/pkg/theme"
)

// ThemeRenderer renders derived themes and their palettes.
type ThemeRenderer struct {
	theme    *Theme
	swatches bool
}

// NewThemeRenderer creates a theme renderer. When swatches is false, colors
// are shown as hex values only.
func NewThemeRenderer(theme *Theme, swatches bool) *ThemeRenderer {
	return &ThemeRenderer{theme: theme, swatches: swatches}
}

// RenderTheme renders a theme header and one line per palette color.
func (r *ThemeRenderer) RenderTheme(t theme.Theme) string {
	header := r.renderHeader(t)

	colors := t.Palette.Colors()
	width := 0
	for _, c := range colors {
		width = max(width, len(c.Name))
	}

	lines := make([]string, 0, len(colors))
	for _, c := range colors {
		lines = append(lines, r.renderColor(c, width))
	}

	return r.theme.Box.Render(r.theme.BoxHeader.Render(header) + "\n" + strings.Join(lines, "\n"))
}

func (r *ThemeRenderer) renderHeader(t theme.Theme) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	badges := []string{
		r.theme.BadgeMuted.Render(t.Kind.String()),
		r.theme.BadgeMuted.Render(t.Scheme.String()),
	}
	if t.Contrast == theme.ContrastHigh {
		badges = append(badges, r.theme.Badge.Render(t.Contrast.String()))
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(SchemeIcon(t.Scheme.IsDark())), r.theme.Title.Render(t.Name))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(badges, " "))
}

func (r *ThemeRenderer) renderColor(c theme.NamedColor, width int) string {
	name := r.theme.Subtle.Render(fmt.Sprintf("%-*s", width, c.Name))
	hex := r.theme.Normal.Render(c.Color.Hex())
	if !r.swatches {
		return fmt.Sprintf("%s  %s", name, hex)
	}
	return fmt.Sprintf("%s %s  %s", r.theme.Swatch(c.Color), name, hex)
}

// RenderPalettes renders one compact row per theme.
func (r *ThemeRenderer) RenderPalettes(themes []theme.Theme) string {
	width := 0
	for _, t := range themes {
		width = max(width, len(t.Name))
	}

	rows := make([]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, r.renderPaletteRow(t, width))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Built-in palettes", r.theme.Highlight.Render(IconPalette)))
	return r.theme.Box.Render(header + "\n" + strings.Join(rows, "\n"))
}

func (r *ThemeRenderer) renderPaletteRow(t theme.Theme, width int) string {
	name := r.theme.Normal.Render(fmt.Sprintf("%-*s", width, t.Name))

	cells := make([]string, 0, 6)
	for _, c := range t.Palette.Colors() {
		if r.swatches {
			cells = append(cells, r.theme.Swatch(c.Color))
		} else {
			cells = append(cells, r.theme.Subtle.Render(c.Color.Hex()))
		}
	}

	sep := " "
	if r.swatches {
		sep = ""
	}
	return fmt.Sprintf("%s  %s", name, strings.Join(cells, sep))
}

// RenderPreference renders the resolved light/dark preference and its source.
func (r *ThemeRenderer) RenderPreference(pref port.ColorSchemePreference) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"%s %s %s",
		iconStyle.Render(SchemeIcon(pref.PrefersDark())),
		r.theme.Highlight.Render(pref.Scheme.String()),
		r.theme.BadgeMuted.Render(pref.Source),
	)
}

// RenderChange renders one line of the watch log.
func (r *ThemeRenderer) RenderChange(t theme.Theme, at time.Time) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"%s %s %s %s",
		r.theme.Subtle.Render(at.Format(time.TimeOnly)),
		iconStyle.Render(IconArrow),
		r.theme.Title.Render(t.Name),
		r.theme.Subtle.Render(t.Palette.Accent.Hex()),
	)
}
