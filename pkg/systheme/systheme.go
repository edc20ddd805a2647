// Package systheme detects the operating system's appearance settings and
// reports when they change.
//
// A SystemTheme wraps the backend compiled for the current target. Queries
// are synchronous; change notifications are delivered through Subscribe.
//
//	st, err := systheme.New(ctx)
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//
//	for range st.Subscribe(ctx) {
//		fmt.Println(st.Theme().Name)
//	}
//
// On macOS, New and Scheme must be called from the main thread, and change
// observers only fire while that thread services its run loop. Programs
// without their own event loop call PumpEvents there while they wait.
package systheme

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/internal/platform"
	"github.com/bnema/systheme/pkg/theme"
)

// SystemTheme is a handle on the OS appearance settings.
// Its methods are safe for concurrent use.
type SystemTheme struct {
	id      uuid.UUID
	backend platform.Backend
	log     zerolog.Logger
}

// New creates a SystemTheme backed by the platform's native API.
// The logger is taken from ctx; without one, nothing is logged.
func New(ctx context.Context) (*SystemTheme, error) {
	backend, err := platform.New(ctx)
	if err != nil {
		return nil, err
	}
	return newWithBackend(ctx, backend), nil
}

// NewUnsupported returns a SystemTheme that never touches the OS: every
// query reports theme.ErrUnsupported and no change is ever signalled.
func NewUnsupported(ctx context.Context) (*SystemTheme, error) {
	return newWithBackend(ctx, platform.NewFallback()), nil
}

func newWithBackend(ctx context.Context, backend platform.Backend) *SystemTheme {
	id := uuid.New()
	log := logging.FromContext(logging.WithInstance(ctx, id.String())).
		With().Str("component", "systheme").Logger()

	log.Debug().Msg("system theme created")
	return &SystemTheme{id: id, backend: backend, log: log}
}

// ID returns the identifier of this instance.
func (s *SystemTheme) ID() uuid.UUID {
	return s.id
}

// Equal reports whether s and other are the same instance.
func (s *SystemTheme) Equal(other *SystemTheme) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.id == other.id
}

// Kind returns the desktop environment family.
func (s *SystemTheme) Kind() (theme.Kind, error) {
	return s.backend.Kind()
}

// Scheme returns the light/dark preference.
func (s *SystemTheme) Scheme() (theme.Scheme, error) {
	return s.backend.Scheme()
}

// Contrast returns the contrast preference.
func (s *SystemTheme) Contrast() (theme.Contrast, error) {
	return s.backend.Contrast()
}

// Accent returns the accent color.
func (s *SystemTheme) Accent() (theme.Color, error) {
	return s.backend.Accent()
}

// Theme queries every setting and derives a complete theme. Settings that
// cannot be read fall back to dark, normal contrast, the target's default
// kind and the family's own accent.
func (s *SystemTheme) Theme() theme.Theme {
	kind, err := s.Kind()
	if err != nil {
		s.log.Debug().Err(err).Msg("kind unavailable, using default")
		kind = theme.DefaultKind
	}

	scheme, err := s.Scheme()
	if err != nil {
		s.log.Debug().Err(err).Msg("scheme unavailable, using dark")
		scheme = theme.SchemeDark
	}

	contrast, err := s.Contrast()
	if err != nil {
		s.log.Debug().Err(err).Msg("contrast unavailable, using normal")
		contrast = theme.ContrastNormal
	}

	var accent *theme.Color
	if c, err := s.Accent(); err == nil {
		accent = &c
	} else {
		s.log.Debug().Err(err).Msg("accent unavailable, using palette accent")
	}

	return theme.Derive(kind, scheme, contrast, accent)
}

// NeedsEventPump reports whether changes are only observed while the caller
// runs PumpEvents.
func (s *SystemTheme) NeedsEventPump() bool {
	_, ok := s.backend.(platform.EventPump)
	return ok
}

// PumpEvents services the platform event loop for at most d, on the thread
// that called New. Where the platform delivers changes on its own it returns
// immediately.
func (s *SystemTheme) PumpEvents(d time.Duration) error {
	if pump, ok := s.backend.(platform.EventPump); ok {
		return pump.PumpEvents(d)
	}
	return nil
}

// Subscribe returns a sequence that yields once each time the OS reports an
// appearance change. Watching starts when the range loop starts. Changes
// that arrive while the loop body runs collapse into a single value.
//
// The sequence ends when ctx is done, the loop breaks, or s is closed.
// Any number of subscribers may range concurrently; each sees every change.
func (s *SystemTheme) Subscribe(ctx context.Context) iter.Seq[struct{}] {
	return func(yield func(struct{}) bool) {
		n := s.backend.Notifier()
		wait := n.Wait()

		for {
			select {
			case <-ctx.Done():
				return
			case <-n.Done():
				return
			case <-wait:
			}

			wait = n.Wait()
			s.log.Trace().Uint64("count", n.Count()).Msg("appearance change")
			if !yield(struct{}{}) {
				return
			}
		}
	}
}

// Close deregisters the OS observers. Running subscriptions end.
// Calling Close more than once is a no-op.
func (s *SystemTheme) Close() error {
	return s.backend.Close()
}
