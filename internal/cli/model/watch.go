// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/pkg/theme"
)

// historySize is how many past changes the view keeps.
const historySize = 5

// ThemeChangedMsg carries the theme derived after an appearance change.
type ThemeChangedMsg struct {
	Theme theme.Theme
	At    time.Time
}

// PreferenceChangedMsg carries a new resolved light/dark preference.
type PreferenceChangedMsg struct {
	Preference port.ColorSchemePreference
}

// WatchEndedMsg is sent when no further changes can arrive.
type WatchEndedMsg struct{}

type change struct {
	theme theme.Theme
	at    time.Time
}

// WatchModel shows the live theme and repaints itself in the new palette
// each time the system appearance changes.
type WatchModel struct {
	current  theme.Theme
	pref     port.ColorSchemePreference
	history  []change
	changes  int
	ended    bool
	swatches bool

	theme   *styles.Theme
	spinner spinner.Model
}

// NewWatchModel creates a watch model starting from the current theme.
func NewWatchModel(current theme.Theme, pref port.ColorSchemePreference, swatches bool) WatchModel {
	t := styles.NewTheme(current)
	return WatchModel{
		current:  current,
		pref:     pref,
		swatches: swatches,
		theme:    t,
		spinner:  styles.NewWatchSpinner(t),
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.ended {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ThemeChangedMsg:
		m.changes++
		m.current = msg.Theme
		m.history = append([]change{{theme: msg.Theme, at: msg.At}}, m.history...)
		if len(m.history) > historySize {
			m.history = m.history[:historySize]
		}
		m.theme = styles.NewTheme(msg.Theme)
		m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)

	case PreferenceChangedMsg:
		m.pref = msg.Preference

	case WatchEndedMsg:
		m.ended = true
	}

	return m, nil
}

// Changes returns how many appearance changes were received.
func (m WatchModel) Changes() int {
	return m.changes
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme
	renderer := styles.NewThemeRenderer(t, m.swatches)

	status := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.spinner.View(),
		" ",
		t.Subtle.Render("Watching for appearance changes"),
	)
	if m.ended {
		status = t.WarningStyle.Render(styles.IconWarning + " The appearance backend stopped reporting changes")
	}

	counter := t.BadgeMuted.Render(fmt.Sprintf("%d changes", m.changes))
	if m.changes == 1 {
		counter = t.BadgeMuted.Render("1 change")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, status, "  ", counter),
		"",
		renderer.RenderTheme(m.current),
		"",
		t.Subtitle.Render("Preference"),
		renderer.RenderPreference(m.pref),
	)

	if len(m.history) > 0 {
		lines := make([]string, len(m.history))
		for i, c := range m.history {
			lines[i] = renderer.RenderChange(c.theme, c.at)
		}
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			content,
			"",
			t.Subtitle.Render("Recent changes"),
			lipgloss.JoinVertical(lipgloss.Left, lines...),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		t.Subtle.Render("q to quit"),
	)
}
