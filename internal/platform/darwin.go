//go:build darwin && cgo

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdint.h>

enum {
	stOK = 0,
	stUnsupported = 1,
	stUnavailable = 2,
	stMainThread = 3,
};

extern void goAppearanceChanged(uintptr_t handle);

@interface SysthemeObserver : NSObject
@property (nonatomic) uintptr_t handle;
@end

@implementation SysthemeObserver
- (void)observeValueForKeyPath:(NSString *)keyPath
                      ofObject:(id)object
                        change:(NSDictionary *)change
                       context:(void *)context {
	goAppearanceChanged(self.handle);
}

- (void)notificationCallback:(NSNotification *)note {
	goAppearanceChanged(self.handle);
}
@end

static int st_observe(uintptr_t handle, void **out) {
	if (![NSThread isMainThread]) {
		return stMainThread;
	}
	@autoreleasepool {
		NSApplication *app = [NSApplication sharedApplication];
		SysthemeObserver *obs = [[SysthemeObserver alloc] init];
		obs.handle = handle;

		[app addObserver:obs
		      forKeyPath:@"effectiveAppearance"
		         options:NSKeyValueObservingOptionNew | NSKeyValueObservingOptionOld
		         context:NULL];
		[[NSNotificationCenter defaultCenter] addObserver:obs
		                                         selector:@selector(notificationCallback:)
		                                             name:NSSystemColorsDidChangeNotification
		                                           object:nil];
		[[[NSWorkspace sharedWorkspace] notificationCenter] addObserver:obs
		                                                       selector:@selector(notificationCallback:)
		                                                           name:NSWorkspaceAccessibilityDisplayOptionsDidChangeNotification
		                                                         object:nil];
		*out = obs;
	}
	return stOK;
}

static void st_unobserve(void *ptr) {
	SysthemeObserver *obs = ptr;
	@autoreleasepool {
		[[NSApplication sharedApplication] removeObserver:obs forKeyPath:@"effectiveAppearance"];
		[[NSNotificationCenter defaultCenter] removeObserver:obs];
		[[[NSWorkspace sharedWorkspace] notificationCenter] removeObserver:obs];
		[obs release];
	}
}

static int st_pump(double seconds) {
	if (![NSThread isMainThread]) {
		return stMainThread;
	}
	@autoreleasepool {
		NSApplication *app = [NSApplication sharedApplication];
		NSDate *until = [NSDate dateWithTimeIntervalSinceNow:seconds];
		NSEvent *event;
		while ((event = [app nextEventMatchingMask:NSEventMaskAny
		                                 untilDate:until
		                                    inMode:NSDefaultRunLoopMode
		                                   dequeue:YES]) != nil) {
			[app sendEvent:event];
		}
	}
	return stOK;
}

static int st_scheme(int *dark) {
	if (@available(macOS 10.14, *)) {
		if (![NSThread isMainThread]) {
			return stMainThread;
		}
		@autoreleasepool {
			NSAppearance *appearance = [[NSApplication sharedApplication] effectiveAppearance];
			NSAppearanceName best = [appearance bestMatchFromAppearancesWithNames:@[
				NSAppearanceNameAqua, NSAppearanceNameDarkAqua
			]];
			*dark = best != nil && [best isEqualToString:NSAppearanceNameDarkAqua];
		}
		return stOK;
	}
	return stUnsupported;
}

static int st_contrast(int *high) {
	if (@available(macOS 10.10, *)) {
		*high = [[NSWorkspace sharedWorkspace] accessibilityDisplayShouldIncreaseContrast];
		return stOK;
	}
	return stUnsupported;
}

static int st_accent(double *r, double *g, double *b) {
	if (@available(macOS 10.14, *)) {
		@autoreleasepool {
			NSColor *c = [[NSColor controlAccentColor] colorUsingColorSpace:[NSColorSpace genericRGBColorSpace]];
			if (c == nil) {
				return stUnavailable;
			}
			*r = [c redComponent];
			*g = [c greenComponent];
			*b = [c blueComponent];
		}
		return stOK;
	}
	return stUnsupported;
}
*/
import "C"

import (
	"context"
	"fmt"
	"runtime/cgo"
	"sync"
	"time"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/internal/notify"
	"github.com/bnema/systheme/pkg/theme"
)

var (
	_ Backend   = (*AppKit)(nil)
	_ EventPump = (*AppKit)(nil)
)

// AppKit reads appearance settings from NSApplication and NSWorkspace.
// Construction and scheme queries must happen on the main thread; callers
// lock it with runtime.LockOSThread from an init function.
type AppKit struct {
	notifier *notify.Notifier
	observer unsafe.Pointer
	handle   cgo.Handle
	log      zerolog.Logger

	closeOnce sync.Once
}

// New registers the appearance observers and returns the AppKit backend.
func New(ctx context.Context) (Backend, error) {
	log := logging.FromContext(ctx).With().Str("component", "appkit").Logger()

	a := &AppKit{notifier: notify.New(), log: log}
	a.handle = cgo.NewHandle(a.notifier)

	var obs unsafe.Pointer
	if err := statusError(C.st_observe(C.uintptr_t(a.handle), &obs)); err != nil {
		a.handle.Delete()
		a.notifier.Close()
		return nil, err
	}
	a.observer = obs

	log.Debug().Msg("appkit backend ready")
	return a, nil
}

// Kind implements Backend.
func (a *AppKit) Kind() (theme.Kind, error) {
	return theme.KindMacOS, nil
}

// Scheme implements Backend.
func (a *AppKit) Scheme() (theme.Scheme, error) {
	var dark C.int
	if err := statusError(C.st_scheme(&dark)); err != nil {
		return theme.SchemeDark, err
	}
	if dark != 0 {
		return theme.SchemeDark, nil
	}
	return theme.SchemeLight, nil
}

// Contrast implements Backend.
func (a *AppKit) Contrast() (theme.Contrast, error) {
	var high C.int
	if err := statusError(C.st_contrast(&high)); err != nil {
		return theme.ContrastNormal, err
	}
	if high != 0 {
		return theme.ContrastHigh, nil
	}
	return theme.ContrastNormal, nil
}

// Accent implements Backend.
func (a *AppKit) Accent() (theme.Color, error) {
	var r, g, b C.double
	if err := statusError(C.st_accent(&r, &g, &b)); err != nil {
		return theme.Color{}, err
	}
	return checkAccent(float64(r), float64(g), float64(b))
}

// PumpEvents implements EventPump. KVO and notification center callbacks
// are only delivered while the main run loop runs.
func (a *AppKit) PumpEvents(d time.Duration) error {
	return statusError(C.st_pump(C.double(d.Seconds())))
}

// Notifier implements Backend.
func (a *AppKit) Notifier() *notify.Notifier {
	return a.notifier
}

// Close implements Backend. It must run on the main thread, like New.
func (a *AppKit) Close() error {
	a.closeOnce.Do(func() {
		C.st_unobserve(a.observer)
		a.handle.Delete()
		a.notifier.Close()
		a.log.Debug().Msg("appkit observers removed")
	})
	return nil
}

func statusError(st C.int) error {
	switch st {
	case C.stOK:
		return nil
	case C.stUnsupported:
		return theme.ErrUnsupported
	case C.stUnavailable:
		return theme.ErrUnavailable
	case C.stMainThread:
		return theme.ErrMainThreadRequired
	default:
		return theme.NewPlatformError(fmt.Errorf("appkit status %d", int(st)))
	}
}
