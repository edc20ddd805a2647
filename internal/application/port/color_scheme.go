// Package port holds the interfaces the colour-scheme resolver depends on.
package port

import (
	"context"

	"github.com/bnema/systheme/pkg/theme"
)

// ColorSchemePreference is a resolved light/dark preference.
type ColorSchemePreference struct {
	// Scheme is the preferred scheme.
	Scheme theme.Scheme `json:"scheme"`

	// Source identifies which detector provided this preference:
	// "config" for an explicit override, "fallback" when nothing answered.
	Source string `json:"source"`
}

// PrefersDark reports whether the preference is the dark scheme.
func (p ColorSchemePreference) PrefersDark() bool {
	return p.Scheme.IsDark()
}

// ColorSchemeDetector detects the light/dark preference from one source.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values are checked first:
	//   - 100+: native appearance APIs
	//   -  10+: heuristics (gsettings, env vars)
	Priority() int

	// Available returns true if this detector can be used at all.
	Available() bool

	// Detect returns the detected scheme and whether detection succeeded.
	Detect(ctx context.Context) (scheme theme.Scheme, ok bool)
}

// ColorSchemeResolver resolves the effective light/dark preference.
type ColorSchemeResolver interface {
	// Resolve returns the current preference: config override first, then
	// detectors by priority, then dark.
	Resolve(ctx context.Context) ColorSchemePreference

	// RegisterDetector adds a detector. Safe to call at any time.
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-evaluates the preference and notifies OnChange callbacks
	// when the scheme differs from the previous evaluation.
	Refresh(ctx context.Context) ColorSchemePreference

	// OnChange registers a callback for scheme changes.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}
