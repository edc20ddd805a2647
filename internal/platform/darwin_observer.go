//go:build darwin && cgo

package platform

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"

	"github.com/bnema/systheme/internal/notify"
)

//export goAppearanceChanged
func goAppearanceChanged(handle C.uintptr_t) {
	if n, ok := cgo.Handle(handle).Value().(*notify.Notifier); ok {
		n.Notify()
	}
}
