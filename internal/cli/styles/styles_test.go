package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/internal/domain/build"
	"github.com/bnema/systheme/pkg/theme"
)

func TestNewTheme_UsesPaletteColors(t *testing.T) {
	derived := theme.Derive(theme.KindQt, theme.SchemeLight, theme.ContrastNormal, nil)
	th := styles.NewTheme(derived)

	assert.Equal(t, derived.Palette.Background.Hex(), string(th.Background))
	assert.Equal(t, derived.Palette.Accent.Hex(), string(th.Accent))
	assert.Equal(t, derived.Palette.Danger.Hex(), string(th.Error))
	// Neutral tones sit between background and foreground
	assert.NotEqual(t, th.Background, th.Muted)
	assert.NotEqual(t, th.Foreground, th.Muted)
}

func TestQueryRenderer_Render(t *testing.T) {
	r := styles.NewQueryRenderer(styles.DefaultTheme())

	out := r.Render([]styles.QueryField{
		{Name: "Desktop", Icon: styles.IconDesktop, Value: "gtk"},
		{Name: "Scheme", Err: theme.ErrUnavailable},
		{Name: "Contrast", Err: theme.ErrUnsupported},
		{Name: "Accent", Err: theme.NewPlatformError(errors.New("bus closed"))},
	})

	require.Contains(t, out, "gtk")
	require.Contains(t, out, "not set")
	require.Contains(t, out, "not supported")
	require.Contains(t, out, "bus closed")
}

func TestThemeRenderer_RenderTheme(t *testing.T) {
	derived := theme.Derive(theme.KindGtk, theme.SchemeDark, theme.ContrastHigh, nil)
	r := styles.NewThemeRenderer(styles.NewTheme(derived), false)

	out := r.RenderTheme(derived)
	require.Contains(t, out, "Adwaita Dark High Contrast")
	require.Contains(t, out, "background")
	require.Contains(t, out, "#000000")
	require.Contains(t, out, "high")
}

func TestThemeRenderer_RenderPalettes(t *testing.T) {
	r := styles.NewThemeRenderer(styles.DefaultTheme(), false)

	out := r.RenderPalettes([]theme.Theme{
		theme.Derive(theme.KindWindows, theme.SchemeLight, theme.ContrastNormal, nil),
		theme.Derive(theme.KindMacOS, theme.SchemeDark, theme.ContrastNormal, nil),
	})
	require.Contains(t, out, "Fluent Light")
	require.Contains(t, out, "Aqua Dark")
	require.Contains(t, out, theme.BuiltinPalette(theme.KindWindows, theme.SchemeLight).Accent.Hex())
}

func TestThemeRenderer_PreferenceAndChange(t *testing.T) {
	r := styles.NewThemeRenderer(styles.DefaultTheme(), true)

	pref := r.RenderPreference(port.ColorSchemePreference{Scheme: theme.SchemeLight, Source: "gsettings"})
	assert.Contains(t, pref, "light")
	assert.Contains(t, pref, "gsettings")

	at := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	line := r.RenderChange(theme.Derive(theme.KindQt, theme.SchemeDark, theme.ContrastNormal, nil), at)
	assert.Contains(t, line, "09:30:00")
	assert.Contains(t, line, "Breeze Dark")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.DefaultTheme())

	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"},
		theme.Derive(theme.KindMacOS, theme.SchemeLight, theme.ContrastNormal, nil))
	require.Contains(t, out, "v1.2.3")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, "Aqua Light")
	require.Contains(t, out, build.RepoURL())
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.DefaultTheme())

	out := r.RenderStatus(styles.ConfigPaths{
		ConfigFile: "/tmp/systheme/config.toml",
		SchemaFile: "/tmp/systheme/config.schema.json",
		LogDir:     "/tmp/systheme/logs",
	}, [][2]string{{"appearance.color_scheme", "prefer-dark"}})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "config.schema.json")
	require.Contains(t, out, "prefer-dark")

	require.Contains(t, r.RenderSaved("appearance.color_scheme", "default", "/tmp/c.toml"), "default")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestNewWatchSpinner_UsesAccent(t *testing.T) {
	th := styles.NewTheme(theme.Derive(theme.KindGtk, theme.SchemeDark, theme.ContrastNormal, nil))
	s := styles.NewWatchSpinner(th)

	assert.Equal(t, spinner.Moon.Frames, s.Spinner.Frames)
	assert.Equal(t, th.Accent, s.Style.GetForeground())
}
