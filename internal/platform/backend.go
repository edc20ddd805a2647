// Package platform implements the OS-specific appearance backends.
//
// Exactly one backend is compiled per target: the XDG desktop portal on
// Linux and the BSDs, a capability-probed WinRT/Win32 backend on Windows, an
// AppKit backend on macOS (cgo), and an always-unsupported fallback anywhere
// else. New returns the compiled-in variant.
package platform

import (
	"time"

	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks github.com/bnema/systheme/internal/platform Backend

// Backend queries the OS for its current appearance and signals changes.
//
// Queries are synchronous and return the error taxonomy from pkg/theme:
// theme.ErrUnsupported when the OS structurally lacks the signal,
// theme.ErrUnavailable when it has no usable value right now,
// theme.ErrMainThreadRequired for thread-affine queries made off the main
// thread, and a *theme.PlatformError for anything else.
type Backend interface {
	// Kind returns the desktop environment family.
	Kind() (theme.Kind, error)
	// Scheme returns the current light/dark preference.
	Scheme() (theme.Scheme, error)
	// Contrast returns the current contrast preference.
	Contrast() (theme.Contrast, error)
	// Accent returns the current accent color. Out-of-range platform data is
	// reported as theme.ErrUnavailable.
	Accent() (theme.Color, error)
	// Notifier is signalled by the backend's OS observers whenever any of
	// the above may have changed. Backends never poll.
	Notifier() *notify.Notifier
	// Close deregisters every OS observer, then closes the notifier.
	Close() error
}

// EventPump is implemented by backends whose observers only fire while the
// owner services the platform event loop. PumpEvents runs that loop for at
// most d and must be called from the thread that created the backend.
type EventPump interface {
	PumpEvents(d time.Duration) error
}

// checkAccent validates raw platform channels before they become a Color.
func checkAccent(r, g, b float64) (theme.Color, error) {
	if !theme.ValidComponent(r) || !theme.ValidComponent(g) || !theme.ValidComponent(b) {
		// Invalid means not configured
		return theme.Color{}, theme.ErrUnavailable
	}
	return theme.Color{R: float32(r), G: float32(g), B: float32(b)}, nil
}
