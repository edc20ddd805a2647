//go:build windows

package platform

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

var (
	combase                 = windows.NewLazySystemDLL("combase.dll")
	procRoInitialize        = combase.NewProc("RoInitialize")
	procRoActivateInstance  = combase.NewProc("RoActivateInstance")
	procWindowsCreateString = combase.NewProc("WindowsCreateString")
	procWindowsDeleteString = combase.NewProc("WindowsDeleteString")

	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

const (
	uiSettingsClass = "Windows.UI.ViewManagement.UISettings"

	roInitMultithreaded = 1

	// UIColorType values
	uiColorBackground = 0
	uiColorAccent     = 5

	// IUISettings3 vtable: IUnknown (3) + IInspectable (3), then GetColorValue
	slotQueryInterface = 0
	slotRelease        = 2
	slotGetColorValue  = 6

	spiGetHighContrast = 0x0042
	hcfHighContrastOn  = 0x00000001

	regNotifyChangeLastSet = 0x00000004

	hrClassNotRegistered = 0x80040154
	hrNoInterface        = 0x80004002
)

var iidUISettings3 = windows.GUID{
	Data1: 0x03021BE4,
	Data2: 0x5254,
	Data3: 0x4781,
	Data4: [8]byte{0x81, 0x94, 0x51, 0x68, 0xF7, 0xD0, 0x6D, 0x7B},
}

// Registry keys whose values back the queried settings.
var watchedKeys = []string{
	`Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
	`Software\Microsoft\Windows\DWM`,
	`Control Panel\Accessibility\HighContrast`,
}

// New probes the running Windows build and returns a capability-probed backend.
func New(ctx context.Context) (Backend, error) {
	log := logging.FromContext(ctx).With().Str("component", "windows").Logger()

	colors, err := probeUISettings()
	if err != nil {
		return nil, theme.NewPlatformError(err)
	}

	var contrast ContrastSource
	if procSystemParametersInfoW.Find() == nil {
		contrast = systemParamsContrast{}
	}

	n := notify.New()
	watcher, err := watchRegistry(log, n)
	if err != nil {
		if colors != nil {
			colors.release()
		}
		return nil, theme.NewPlatformError(err)
	}

	release := func() error {
		watcher.close()
		if colors != nil {
			colors.release()
		}
		return nil
	}

	log.Debug().
		Bool("colors", colors != nil).
		Bool("contrast", contrast != nil).
		Msg("windows backend probed")

	// Keep the interface nil rather than a typed nil pointer
	var colorSource ColorSource
	if colors != nil {
		colorSource = colors
	}
	return NewProbed(theme.KindWindows, colorSource, contrast, n, release), nil
}

func failed(hr uintptr) bool {
	return int32(hr) < 0
}

type hresultError uint32

func (e hresultError) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(e))
}

// comObject is a raw COM interface pointer.
type comObject struct {
	vtbl *[64]uintptr
}

func (o *comObject) call(slot int, args ...uintptr) uintptr {
	all := append([]uintptr{uintptr(unsafe.Pointer(o))}, args...)
	hr, _, _ := syscall.SyscallN(o.vtbl[slot], all...)
	return hr
}

func (o *comObject) queryInterface(iid *windows.GUID) (*comObject, error) {
	var out *comObject
	if hr := o.call(slotQueryInterface, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out))); failed(hr) {
		return nil, hresultError(hr)
	}
	return out, nil
}

func (o *comObject) release() {
	o.call(slotRelease)
}

// uiSettingsColors reads colors through WinRT IUISettings3.
type uiSettingsColors struct {
	mu  sync.Mutex
	obj *comObject
}

// probeUISettings returns nil without error when the API is absent.
func probeUISettings() (*uiSettingsColors, error) {
	for _, proc := range []*windows.LazyProc{procRoInitialize, procRoActivateInstance, procWindowsCreateString, procWindowsDeleteString} {
		if proc.Find() != nil {
			return nil, nil
		}
	}

	// S_FALSE and RPC_E_CHANGED_MODE both leave a usable apartment
	_, _, _ = procRoInitialize.Call(roInitMultithreaded)

	class, err := newHString(uiSettingsClass)
	if err != nil {
		return nil, err
	}
	defer deleteHString(class)

	var inspectable *comObject
	hr, _, _ := procRoActivateInstance.Call(class, uintptr(unsafe.Pointer(&inspectable)))
	if failed(hr) {
		if uint32(hr) == hrClassNotRegistered {
			return nil, nil
		}
		return nil, fmt.Errorf("activate %s: %w", uiSettingsClass, hresultError(hr))
	}
	defer inspectable.release()

	settings, err := inspectable.queryInterface(&iidUISettings3)
	if err != nil {
		var hrErr hresultError
		if errors.As(err, &hrErr) && uint32(hrErr) == hrNoInterface {
			// GetColorValue arrived with IUISettings3
			return nil, nil
		}
		return nil, fmt.Errorf("query IUISettings3: %w", err)
	}

	return &uiSettingsColors{obj: settings}, nil
}

func (c *uiSettingsColors) Background() (RGB, error) {
	return c.color(uiColorBackground)
}

func (c *uiSettingsColors) Accent() (RGB, error) {
	return c.color(uiColorAccent)
}

func (c *uiSettingsColors) color(colorType uintptr) (RGB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.obj == nil {
		return RGB{}, theme.ErrUnavailable
	}

	var v struct{ A, R, G, B uint8 }
	if hr := c.obj.call(slotGetColorValue, colorType, uintptr(unsafe.Pointer(&v))); failed(hr) {
		return RGB{}, hresultError(hr)
	}
	if v.A == 0 {
		// Fully transparent is not a usable color
		return RGB{}, theme.ErrUnavailable
	}
	return RGB{R: v.R, G: v.G, B: v.B}, nil
}

func (c *uiSettingsColors) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.obj != nil {
		c.obj.release()
		c.obj = nil
	}
}

func newHString(s string) (uintptr, error) {
	u16, err := windows.UTF16FromString(s)
	if err != nil {
		return 0, err
	}
	var h uintptr
	hr, _, _ := procWindowsCreateString.Call(uintptr(unsafe.Pointer(&u16[0])), uintptr(len(u16)-1), uintptr(unsafe.Pointer(&h)))
	if failed(hr) {
		return 0, fmt.Errorf("create HSTRING: %w", hresultError(hr))
	}
	return h, nil
}

func deleteHString(h uintptr) {
	_, _, _ = procWindowsDeleteString.Call(h)
}

type highContrastW struct {
	cbSize            uint32
	dwFlags           uint32
	lpszDefaultScheme *uint16
}

// systemParamsContrast reads SPI_GETHIGHCONTRAST.
type systemParamsContrast struct{}

func (systemParamsContrast) HighContrast() (bool, error) {
	hc := highContrastW{cbSize: uint32(unsafe.Sizeof(highContrastW{}))}
	ok, _, err := procSystemParametersInfoW.Call(spiGetHighContrast, uintptr(hc.cbSize), uintptr(unsafe.Pointer(&hc)), 0)
	if ok == 0 {
		return false, fmt.Errorf("SystemParametersInfoW: %w", err)
	}
	return hc.dwFlags&hcfHighContrastOn != 0, nil
}

// registryWatcher turns registry change events into notifications.
type registryWatcher struct {
	keys   []registry.Key
	events []windows.Handle
	stop   windows.Handle
	done   chan struct{}
}

// watchRegistry arms change notifications on every watched key that exists.
// Notifications are tied to the arming thread, so a single OS-locked
// goroutine arms, waits and re-arms.
func watchRegistry(log zerolog.Logger, n *notify.Notifier) (*registryWatcher, error) {
	stop, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("create stop event: %w", err)
	}

	w := &registryWatcher{stop: stop, done: make(chan struct{})}
	for _, path := range watchedKeys {
		key, err := registry.OpenKey(registry.CURRENT_USER, path, registry.NOTIFY|registry.QUERY_VALUE)
		if err != nil {
			log.Debug().Err(err).Str("key", path).Msg("registry key not watchable")
			continue
		}
		ev, err := windows.CreateEvent(nil, 0, 0, nil)
		if err != nil {
			_ = key.Close()
			w.closeHandles()
			return nil, fmt.Errorf("create change event: %w", err)
		}
		w.keys = append(w.keys, key)
		w.events = append(w.events, ev)
	}

	ready := make(chan error, 1)
	go w.run(log, n, ready)
	if err := <-ready; err != nil {
		<-w.done
		w.closeHandles()
		return nil, err
	}
	return w, nil
}

func (w *registryWatcher) arm(i int) error {
	return windows.RegNotifyChangeKeyValue(windows.Handle(w.keys[i]), false, regNotifyChangeLastSet, w.events[i], true)
}

func (w *registryWatcher) run(log zerolog.Logger, n *notify.Notifier, ready chan<- error) {
	defer close(w.done)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for i := range w.keys {
		if err := w.arm(i); err != nil {
			ready <- fmt.Errorf("watch %s: %w", watchedKeys[i], err)
			return
		}
	}
	ready <- nil

	handles := append(append([]windows.Handle(nil), w.events...), w.stop)
	for {
		idx, err := windows.WaitForMultipleObjects(handles, false, windows.INFINITE)
		if err != nil {
			log.Debug().Err(err).Msg("registry wait failed")
			n.Close()
			return
		}

		i := int(idx - windows.WAIT_OBJECT_0)
		if i < 0 || i >= len(w.events) {
			return
		}

		if err := w.arm(i); err != nil {
			log.Debug().Err(err).Msg("registry re-arm failed")
		}
		n.Notify()
	}
}

func (w *registryWatcher) close() {
	_ = windows.SetEvent(w.stop)
	<-w.done
	w.closeHandles()
}

func (w *registryWatcher) closeHandles() {
	for _, k := range w.keys {
		_ = k.Close()
	}
	for _, ev := range w.events {
		_ = windows.CloseHandle(ev)
	}
	_ = windows.CloseHandle(w.stop)
	w.keys, w.events = nil, nil
}
