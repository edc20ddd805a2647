package colorscheme

import (
	"context"
	"errors"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/pkg/theme"
)

const (
	detectorNameSystem = "system"
	prioritySystem     = 100
)

// SchemeSource is the part of systheme.SystemTheme the detector reads.
type SchemeSource interface {
	Scheme() (theme.Scheme, error)
}

// SystemThemeDetector asks the native appearance API.
type SystemThemeDetector struct {
	source SchemeSource
}

// NewSystemThemeDetector creates a detector reading from source.
func NewSystemThemeDetector(source SchemeSource) *SystemThemeDetector {
	return &SystemThemeDetector{source: source}
}

// Name implements port.ColorSchemeDetector.
func (*SystemThemeDetector) Name() string {
	return detectorNameSystem
}

// Priority implements port.ColorSchemeDetector.
func (*SystemThemeDetector) Priority() int {
	return prioritySystem
}

// Available implements port.ColorSchemeDetector.
func (d *SystemThemeDetector) Available() bool {
	return d.source != nil
}

// Detect implements port.ColorSchemeDetector.
// Unsupported and unavailable both defer to lower priority detectors.
func (d *SystemThemeDetector) Detect(ctx context.Context) (theme.Scheme, bool) {
	scheme, err := d.source.Scheme()
	if err != nil {
		if errors.Is(err, theme.ErrPlatform) {
			logging.FromContext(ctx).Debug().Err(err).Msg("system scheme query failed")
		}
		return theme.SchemeDark, false
	}
	return scheme, true
}
