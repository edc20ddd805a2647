//go:build !linux && !freebsd && !dragonfly && !openbsd && !netbsd && !windows && !(darwin && cgo)

package platform

import (
	"context"

	"github.com/bnema/systheme/internal/logging"
)

// New returns the fallback backend; this target has no appearance API.
func New(ctx context.Context) (Backend, error) {
	logging.FromContext(ctx).Debug().Str("component", "fallback").Msg("no appearance backend for this target")
	return NewFallback(), nil
}
