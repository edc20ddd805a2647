package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported means the signal does not exist on this OS, version or
	// desktop environment. It is permanent for the life of the process.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnavailable means the signal exists but has no usable value right now
	// (not configured, out of range, wrong type). Callers should re-query later.
	ErrUnavailable = errors.New("unavailable data")

	// ErrMainThreadRequired means the call must be made from the thread that
	// owns the OS event loop.
	ErrMainThreadRequired = errors.New("main thread required")

	// ErrPlatform matches every *PlatformError with errors.Is.
	ErrPlatform = errors.New("platform error")
)

// PlatformError wraps an unexpected OS or IPC failure.
type PlatformError struct {
	Err error
}

// NewPlatformError wraps err as a platform failure.
// A nil error stays nil and errors already in the taxonomy are returned as-is.
func NewPlatformError(err error) error {
	if err == nil {
		return nil
	}
	if Classified(err) {
		return err
	}
	return &PlatformError{Err: err}
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform error: %v", e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrPlatform) match any platform error.
func (e *PlatformError) Is(target error) bool {
	return target == ErrPlatform
}

// Classified reports whether err already belongs to the error taxonomy.
func Classified(err error) bool {
	return errors.Is(err, ErrUnsupported) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrMainThreadRequired) ||
		errors.Is(err, ErrPlatform)
}
