// Package colorscheme resolves the effective light/dark preference from
// user config and a chain of detectors, the native appearance API first.
package colorscheme

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/pkg/theme"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme configuration.
type ConfigProvider interface {
	// GetColorScheme returns the configured color scheme preference.
	// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light"
	GetColorScheme() string
}

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// NewResolver creates a resolver. config may be nil.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config: config,
		current: port.ColorSchemePreference{
			Scheme: theme.SchemeDark, // until first Refresh
			Source: sourceFallback,
		},
	}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve(ctx context.Context) port.ColorSchemePreference {
	r.mu.RLock()
	config := r.config
	detectors := slices.Clone(r.detectors)
	r.mu.RUnlock()

	return resolve(ctx, config, detectors)
}

// resolve runs without the lock: detectors may block on the OS.
func resolve(ctx context.Context, config ConfigProvider, detectors []port.ColorSchemeDetector) port.ColorSchemePreference {
	log := logging.FromContext(ctx)

	if config != nil {
		if scheme, ok := ParseOverride(config.GetColorScheme()); ok {
			return port.ColorSchemePreference{Scheme: scheme, Source: sourceConfig}
		}
	}

	slices.SortStableFunc(detectors, func(a, b port.ColorSchemeDetector) int {
		return b.Priority() - a.Priority()
	})

	for _, detector := range detectors {
		if !detector.Available() {
			continue
		}
		if scheme, ok := detector.Detect(ctx); ok {
			return port.ColorSchemePreference{Scheme: scheme, Source: detector.Name()}
		}
		log.Trace().Str("detector", detector.Name()).Msg("detector gave no answer")
	}

	return port.ColorSchemePreference{Scheme: theme.SchemeDark, Source: sourceFallback}
}

// ParseOverride interprets a configured color scheme. "default" and empty
// mean no override.
func ParseOverride(value string) (theme.Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "prefer-dark", "dark":
		return theme.SchemeDark, true
	case "prefer-light", "light":
		return theme.SchemeLight, true
	default:
		return theme.SchemeDark, false
	}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh(ctx context.Context) port.ColorSchemePreference {
	pref := r.Resolve(ctx)

	r.mu.Lock()
	changed := pref.Scheme != r.current.Scheme
	r.current = pref
	callbacks := slices.Clone(r.callbacks)
	r.mu.Unlock()

	if changed {
		logging.FromContext(ctx).Debug().
			Stringer("scheme", pref.Scheme).
			Str("source", pref.Source).
			Msg("color scheme changed")
		for _, cb := range callbacks {
			cb.fn(pref)
		}
	}

	return pref
}

// Current returns the preference from the last Refresh.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.callbacks = slices.DeleteFunc(r.callbacks, func(cb *callbackWrapper) bool {
			return cb == wrapper
		})
	}
}
