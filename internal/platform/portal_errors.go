//go:build linux || freebsd || dragonfly || openbsd || netbsd

package platform

import (
	"errors"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/systheme/pkg/theme"
)

// D-Bus error names meaning "this desktop does not implement that".
const (
	dbusServiceUnknown   = "org.freedesktop.DBus.Error.ServiceUnknown"
	dbusUnknownInterface = "org.freedesktop.DBus.Error.UnknownInterface"
	dbusUnknownMethod    = "org.freedesktop.DBus.Error.UnknownMethod"
	portalNotFound       = "org.freedesktop.portal.Error.NotFound"
)

// unsupportedErrors lists bus errors that collapse to theme.ErrUnsupported.
// Every other bus fault is a platform error.
var unsupportedErrors = map[string]struct{}{
	dbusServiceUnknown:   {},
	dbusUnknownInterface: {},
	dbusUnknownMethod:    {},
	portalNotFound:       {},
}

// mapPortalError converts a bus error into the theme error taxonomy.
func mapPortalError(err error) error {
	if err == nil {
		return nil
	}

	if name, ok := dbusErrorName(err); ok {
		if _, unsupported := unsupportedErrors[name]; unsupported {
			return theme.ErrUnsupported
		}
	}

	return theme.NewPlatformError(err)
}

// dbusErrorName extracts the error name of a method error reply.
func dbusErrorName(err error) (string, bool) {
	var e dbus.Error
	if errors.As(err, &e) {
		return e.Name, true
	}
	var pe *dbus.Error
	if errors.As(err, &pe) && pe != nil {
		return pe.Name, true
	}
	return "", false
}

func isUnknownMethod(err error) bool {
	name, ok := dbusErrorName(err)
	return ok && name == dbusUnknownMethod
}
