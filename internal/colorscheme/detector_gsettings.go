package colorscheme

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/pkg/theme"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// commandRunner runs a command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GsettingsDetector reads org.gnome.desktop.interface through the gsettings
// tool. It answers on GNOME sessions without a portal.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	run      commandRunner
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{lookPath: exec.LookPath, run: execRunner}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// color-scheme wins; older GNOME only has gtk-theme, judged by name.
func (d *GsettingsDetector) Detect(ctx context.Context) (theme.Scheme, bool) {
	log := logging.FromContext(ctx)

	if value, err := d.get(ctx, "color-scheme"); err == nil {
		switch value {
		case "prefer-dark":
			return theme.SchemeDark, true
		case "prefer-light":
			return theme.SchemeLight, true
		}
		// "default" means follow the GTK theme
	} else {
		log.Trace().Err(err).Msg("gsettings color-scheme unreadable")
	}

	value, err := d.get(ctx, "gtk-theme")
	if err != nil || value == "" {
		return theme.SchemeDark, false
	}
	if strings.Contains(strings.ToLower(value), "dark") {
		return theme.SchemeDark, true
	}
	return theme.SchemeLight, true
}

func (d *GsettingsDetector) get(ctx context.Context, key string) (string, error) {
	output, err := d.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", key)
	if err != nil {
		return "", err
	}

	// Output is like "'prefer-dark'\n"
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), nil
}
