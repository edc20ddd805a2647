// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/systheme/pkg/theme"
)

// Tint amounts used to derive neutral tones from background toward foreground.
const (
	surfaceTint        = 0.08
	surfaceVariantTint = 0.16
	borderTint         = 0.25
	mutedTint          = 0.55
)

// Theme holds lipgloss colors and styles derived from a detected theme.
type Theme struct {
	// Base colors (from theme.Palette)
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Neutral tones mixed from background and foreground
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Border         lipgloss.Color
	Muted          lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme creates a Theme from a derived system theme.
func NewTheme(t theme.Theme) *Theme {
	return NewThemeFromPalette(t.Palette)
}

// DefaultTheme returns the theme used before anything was detected.
func DefaultTheme() *Theme {
	return NewThemeFromPalette(theme.SystemPalette(theme.DefaultKind, theme.SchemeDark, theme.ContrastNormal))
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(p theme.Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background.Hex()),
		Foreground: lipgloss.Color(p.Foreground.Hex()),
		Accent:     lipgloss.Color(p.Accent.Hex()),
		Success:    lipgloss.Color(p.Success.Hex()),
		Warning:    lipgloss.Color(p.Warning.Hex()),
		Error:      lipgloss.Color(p.Danger.Hex()),

		Surface:        tint(p, surfaceTint),
		SurfaceVariant: tint(p, surfaceVariantTint),
		Border:         tint(p, borderTint),
		Muted:          tint(p, mutedTint),
	}

	t.buildStyles()
	return t
}

// tint blends the palette background toward its foreground in Lab space.
func tint(p theme.Palette, amount float64) lipgloss.Color {
	bg := toColorful(p.Background)
	fg := toColorful(p.Foreground)
	return lipgloss.Color(bg.BlendLab(fg, amount).Clamped().Hex())
}

func toColorful(c theme.Color) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Foreground)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// Swatch renders a two-cell block filled with c.
func (t *Theme) Swatch(c theme.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}
