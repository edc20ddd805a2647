package platform

import (
	"sync"

	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

// darkThreshold is the channel sum below which a background reads as dark.
const darkThreshold = 3 * 128

// RGB is an 8-bit color as reported by the OS.
type RGB struct {
	R, G, B uint8
}

// ColorSource reads UI colors from the OS. Implementations return
// theme.ErrUnavailable when the OS reports no value.
type ColorSource interface {
	Background() (RGB, error)
	Accent() (RGB, error)
}

// ContrastSource reads the high-contrast accessibility flag.
type ContrastSource interface {
	HighContrast() (bool, error)
}

// Compile-time interface check.
var _ Backend = (*Probed)(nil)

// Probed is a backend whose capabilities were probed once at construction.
// A nil source means the running OS build lacks that API: queries that need
// it fail with theme.ErrUnsupported, never theme.ErrUnavailable.
type Probed struct {
	kind     theme.Kind
	colors   ColorSource
	contrast ContrastSource
	notifier *notify.Notifier

	closeOnce sync.Once
	closeErr  error
	release   func() error
}

// NewProbed assembles a capability-probed backend. release, when non-nil,
// tears down the OS change watchers and runs before the notifier closes.
func NewProbed(kind theme.Kind, colors ColorSource, contrast ContrastSource, n *notify.Notifier, release func() error) *Probed {
	if n == nil {
		n = notify.New()
	}
	return &Probed{
		kind:     kind,
		colors:   colors,
		contrast: contrast,
		notifier: n,
		release:  release,
	}
}

// Kind implements Backend.
func (p *Probed) Kind() (theme.Kind, error) {
	return p.kind, nil
}

// Scheme implements Backend.
// There is no scheme flag; the reported background color is classified
// instead, which can misread custom backgrounds.
func (p *Probed) Scheme() (theme.Scheme, error) {
	if p.colors == nil {
		return theme.SchemeDark, theme.ErrUnsupported
	}

	bg, err := p.colors.Background()
	if err != nil {
		return theme.SchemeDark, theme.NewPlatformError(err)
	}

	if isBackgroundDark(bg) {
		return theme.SchemeDark, nil
	}
	return theme.SchemeLight, nil
}

// Contrast implements Backend.
func (p *Probed) Contrast() (theme.Contrast, error) {
	if p.contrast == nil {
		return theme.ContrastNormal, theme.ErrUnsupported
	}

	high, err := p.contrast.HighContrast()
	if err != nil {
		return theme.ContrastNormal, theme.NewPlatformError(err)
	}

	if high {
		return theme.ContrastHigh, nil
	}
	return theme.ContrastNormal, nil
}

// Accent implements Backend.
func (p *Probed) Accent() (theme.Color, error) {
	if p.colors == nil {
		return theme.Color{}, theme.ErrUnsupported
	}

	c, err := p.colors.Accent()
	if err != nil {
		return theme.Color{}, theme.NewPlatformError(err)
	}

	return theme.RGB8(c.R, c.G, c.B), nil
}

// Notifier implements Backend.
func (p *Probed) Notifier() *notify.Notifier {
	return p.notifier
}

// Close implements Backend.
func (p *Probed) Close() error {
	p.closeOnce.Do(func() {
		if p.release != nil {
			p.closeErr = p.release()
		}
		p.notifier.Close()
	})
	return p.closeErr
}

func isBackgroundDark(c RGB) bool {
	return int(c.R)+int(c.G)+int(c.B) < darkThreshold
}
