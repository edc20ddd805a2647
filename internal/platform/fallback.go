package platform

import (
	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

// Compile-time interface check.
var _ Backend = (*Fallback)(nil)

// Fallback is the backend for targets without a native implementation.
// Every query is unsupported and its notifier is never signalled: the
// platform never changes, which is not the same as the platform failing.
type Fallback struct {
	notifier *notify.Notifier
}

// NewFallback creates the no-op backend.
func NewFallback() *Fallback {
	return &Fallback{notifier: notify.New()}
}

// Kind implements Backend.
func (*Fallback) Kind() (theme.Kind, error) {
	return theme.DefaultKind, theme.ErrUnsupported
}

// Scheme implements Backend.
func (*Fallback) Scheme() (theme.Scheme, error) {
	return theme.SchemeDark, theme.ErrUnsupported
}

// Contrast implements Backend.
func (*Fallback) Contrast() (theme.Contrast, error) {
	return theme.ContrastNormal, theme.ErrUnsupported
}

// Accent implements Backend.
func (*Fallback) Accent() (theme.Color, error) {
	return theme.Color{}, theme.ErrUnsupported
}

// Notifier implements Backend.
func (f *Fallback) Notifier() *notify.Notifier {
	return f.notifier
}

// Close implements Backend.
func (f *Fallback) Close() error {
	f.notifier.Close()
	return nil
}
