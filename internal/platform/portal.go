//go:build linux || freebsd || dragonfly || openbsd || netbsd

package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

const (
	portalDest           = "org.freedesktop.portal.Desktop"
	portalPath           = "/org/freedesktop/portal/desktop"
	settingsInterface    = "org.freedesktop.portal.Settings"
	readOneMethod        = settingsInterface + ".ReadOne"
	readMethod           = settingsInterface + ".Read"
	settingChangedMember = "SettingChanged"
	settingChangedSignal = settingsInterface + "." + settingChangedMember
	appearanceNamespace  = "org.freedesktop.appearance"

	colorSchemeKey = "color-scheme"
	contrastKey    = "contrast"
	accentColorKey = "accent-color"

	nameHasOwnerMethod = "org.freedesktop.DBus.NameHasOwner"
	gtkPortalImpl      = "org.freedesktop.impl.portal.desktop.gtk"

	signalBuffer = 16
)

// sessionBus is the part of *dbus.Conn the portal backend uses.
type sessionBus interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	BusObject() dbus.BusObject
	AddMatchSignal(options ...dbus.MatchOption) error
	RemoveMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
	Close() error
}

// Compile-time interface checks.
var (
	_ Backend    = (*Portal)(nil)
	_ sessionBus = (*dbus.Conn)(nil)
)

// Portal reads appearance settings from the XDG desktop portal.
// It works with any desktop shipping a portal implementation (GNOME, KDE,
// wlroots compositors) and inside Flatpak sandboxes.
type Portal struct {
	bus      sessionBus
	settings dbus.BusObject
	notifier *notify.Notifier
	log      zerolog.Logger

	signals chan *dbus.Signal
	match   []dbus.MatchOption
	stop    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// New connects to the session bus and returns the portal backend.
func New(ctx context.Context) (Backend, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, theme.NewPlatformError(fmt.Errorf("connect session bus: %w", err))
	}
	return newPortal(ctx, conn)
}

// newPortal subscribes to setting changes on bus. The bus is owned by the
// returned backend and closed on every failure path.
func newPortal(ctx context.Context, bus sessionBus) (*Portal, error) {
	log := logging.FromContext(ctx).With().Str("component", "portal").Logger()

	p := &Portal{
		bus:      bus,
		settings: bus.Object(portalDest, portalPath),
		notifier: notify.New(),
		log:      log,
		signals:  make(chan *dbus.Signal, signalBuffer),
		match: []dbus.MatchOption{
			dbus.WithMatchObjectPath(portalPath),
			dbus.WithMatchInterface(settingsInterface),
			dbus.WithMatchMember(settingChangedMember),
			dbus.WithMatchArg(0, appearanceNamespace),
		},
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	if err := bus.AddMatchSignal(p.match...); err != nil {
		_ = bus.Close()
		return nil, theme.NewPlatformError(fmt.Errorf("subscribe %s: %w", settingChangedSignal, err))
	}
	bus.Signal(p.signals)

	go p.forward()

	log.Debug().Str("namespace", appearanceNamespace).Msg("portal backend ready")
	return p, nil
}

// forward turns SettingChanged signals into notifications.
func (p *Portal) forward() {
	defer close(p.stopped)

	for {
		select {
		case sig, ok := <-p.signals:
			if !ok {
				// Connection gone: no more changes will ever arrive
				p.log.Debug().Msg("portal signal channel closed")
				p.notifier.Close()
				return
			}
			if isAppearanceChange(sig) {
				p.log.Trace().Interface("key", sig.Body[1]).Msg("appearance setting changed")
				p.notifier.Notify()
			}
		case <-p.stop:
			return
		}
	}
}

func isAppearanceChange(sig *dbus.Signal) bool {
	if sig == nil || sig.Path != portalPath || sig.Name != settingChangedSignal {
		return false
	}
	if len(sig.Body) < 2 {
		return false
	}
	ns, ok := sig.Body[0].(string)
	return ok && ns == appearanceNamespace
}

// Kind implements Backend.
// The GTK portal implementation owning its bus name means a GTK session;
// anything else is assumed Qt. This is a heuristic: sessions running both
// or neither are classified by that single check.
func (p *Portal) Kind() (theme.Kind, error) {
	var hasOwner bool
	if err := p.bus.BusObject().Call(nameHasOwnerMethod, 0, gtkPortalImpl).Store(&hasOwner); err != nil {
		return theme.DefaultKind, mapPortalError(err)
	}

	if hasOwner {
		return theme.KindGtk, nil
	}
	return theme.KindQt, nil
}

// Scheme implements Backend.
func (p *Portal) Scheme() (theme.Scheme, error) {
	v, err := p.readUint32(colorSchemeKey)
	if err != nil {
		return theme.SchemeDark, err
	}

	// 0 = no preference, 1 = dark, 2 = light
	switch v {
	case 1:
		return theme.SchemeDark, nil
	case 2:
		return theme.SchemeLight, nil
	default:
		return theme.SchemeDark, theme.ErrUnavailable
	}
}

// Contrast implements Backend.
func (p *Portal) Contrast() (theme.Contrast, error) {
	v, err := p.readUint32(contrastKey)
	if err != nil {
		return theme.ContrastNormal, err
	}

	// 0 = normal, 1 = high
	switch v {
	case 0:
		return theme.ContrastNormal, nil
	case 1:
		return theme.ContrastHigh, nil
	default:
		return theme.ContrastNormal, theme.ErrUnavailable
	}
}

// Accent implements Backend.
func (p *Portal) Accent() (theme.Color, error) {
	v, err := p.read(accentColorKey)
	if err != nil {
		return theme.Color{}, err
	}

	// (ddd) arrives as a slice of its fields
	fields, ok := v.Value().([]interface{})
	if !ok || len(fields) != 3 {
		return theme.Color{}, theme.ErrUnavailable
	}

	var rgb [3]float64
	for i, f := range fields {
		d, ok := f.(float64)
		if !ok {
			return theme.Color{}, theme.ErrUnavailable
		}
		rgb[i] = d
	}

	return checkAccent(rgb[0], rgb[1], rgb[2])
}

// Notifier implements Backend.
func (p *Portal) Notifier() *notify.Notifier {
	return p.notifier
}

// Close implements Backend.
func (p *Portal) Close() error {
	p.closeOnce.Do(func() {
		close(p.stop)
		<-p.stopped

		if err := p.bus.RemoveMatchSignal(p.match...); err != nil {
			p.log.Debug().Err(err).Msg("failed to remove portal signal match")
		}
		p.bus.RemoveSignal(p.signals)

		if err := p.bus.Close(); err != nil {
			p.closeErr = fmt.Errorf("close session bus: %w", err)
		}
		p.notifier.Close()
	})
	return p.closeErr
}

func (p *Portal) readUint32(key string) (uint32, error) {
	v, err := p.read(key)
	if err != nil {
		return 0, err
	}

	u, ok := v.Value().(uint32)
	if !ok {
		// Wrong type means not configured
		return 0, theme.ErrUnavailable
	}
	return u, nil
}

// read fetches one appearance setting. Portals older than interface
// version 2 lack ReadOne; their Read double-wraps the value in a variant.
func (p *Portal) read(key string) (dbus.Variant, error) {
	var v dbus.Variant

	err := p.settings.Call(readOneMethod, 0, appearanceNamespace, key).Store(&v)
	if err == nil {
		return v, nil
	}
	if !isUnknownMethod(err) {
		return v, mapPortalError(err)
	}

	if err := p.settings.Call(readMethod, 0, appearanceNamespace, key).Store(&v); err != nil {
		return v, mapPortalError(err)
	}
	if inner, ok := v.Value().(dbus.Variant); ok {
		v = inner
	}
	return v, nil
}
