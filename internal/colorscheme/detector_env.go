package colorscheme

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/systheme/pkg/theme"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector detects color scheme from GTK_THEME environment variable.
// This is useful when users explicitly set their theme via environment.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// A theme name containing "dark" (e.g. Adwaita:dark) is dark, anything else light.
func (d *EnvDetector) Detect(context.Context) (theme.Scheme, bool) {
	gtkTheme := d.getenv("GTK_THEME")
	if gtkTheme == "" {
		return theme.SchemeDark, false
	}

	if strings.Contains(strings.ToLower(gtkTheme), "dark") {
		return theme.SchemeDark, true
	}
	return theme.SchemeLight, true
}
