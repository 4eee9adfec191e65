package gfx

import (
	"errors"
	"strings"
	"testing"
)

func TestDeviceCreationErrorMatchesSentinel(t *testing.T) {
	err := &DeviceCreationError{Detail: "request device", Err: errors.New("boom")}

	if !errors.Is(err, ErrDeviceCreationFailed) {
		t.Error("errors.Is(err, ErrDeviceCreationFailed) = false, want true")
	}
}

func TestDeviceCreationErrorUnwrap(t *testing.T) {
	cause := errors.New("driver exploded")
	err := &DeviceCreationError{Detail: "create instance", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("underlying cause not reachable via errors.Is")
	}
}

func TestDeviceCreationErrorMessage(t *testing.T) {
	withCause := &DeviceCreationError{Detail: "request device", Err: errors.New("boom")}
	if msg := withCause.Error(); !strings.Contains(msg, "request device") || !strings.Contains(msg, "boom") {
		t.Errorf("Error() = %q, missing detail or cause", msg)
	}

	withoutCause := &DeviceCreationError{Detail: "no adapter"}
	if msg := withoutCause.Error(); !strings.Contains(msg, "no adapter") {
		t.Errorf("Error() = %q, missing detail", msg)
	}
}
