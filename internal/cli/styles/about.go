package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/systheme/internal/domain/build"
	"github.com/bnema/systheme/pkg/theme"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info and the active theme name next to the logo.
func (r *AboutRenderer) Render(info build.Info, current theme.Theme) string {
	logo := r.renderLogo()
	lines := r.renderInfoLines(info, current)

	// Combine horizontally: logo | info
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}

func (r *AboutRenderer) renderLogo() string {
	// Half-filled disc: the light and dark halves use the current palette
	dark := lipgloss.NewStyle().Foreground(r.theme.Foreground)
	accent := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	rows := []struct{ left, right string }{
		{" ▄██", "██▄ "},
		{"████", "████"},
		{"████", "████"},
		{" ▀██", "██▀ "},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = dark.Render(row.left) + accent.Render(row.right)
	}
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Render(strings.Join(lines, "\n"))
}

func (r *AboutRenderer) renderInfoLines(info build.Info, current theme.Theme) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconPalette), keyStyle.Render("Theme"), valStyle.Render(current.Name)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made with love by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}
