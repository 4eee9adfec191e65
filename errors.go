package gfx

import (
	"errors"
	"fmt"
)

// ErrDeviceCreationFailed is matched by every *DeviceCreationError via
// errors.Is. Use it when the cause does not matter.
var ErrDeviceCreationFailed = errors.New("gfx: device creation failed")

// ErrNoAdapter is returned when instance enumeration finds no usable adapter.
var ErrNoAdapter = errors.New("gfx: no compatible adapter found")

// DeviceCreationError reports a failed device or context creation.
// Creation failures are surfaced to the caller instead of being logged
// and ignored; nothing in gfx proceeds best-effort on a broken device.
type DeviceCreationError struct {
	// Detail names the creation step that failed (e.g. "request device",
	// "create deferred context").
	Detail string

	// Err is the underlying driver error, if any.
	Err error
}

// Error implements the error interface.
func (e *DeviceCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gfx: device creation failed: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("gfx: device creation failed: %s", e.Detail)
}

// Unwrap returns the underlying driver error.
func (e *DeviceCreationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDeviceCreationFailed, so callers can
// match any creation failure without knowing the detail.
func (e *DeviceCreationError) Is(target error) bool {
	return target == ErrDeviceCreationFailed
}
