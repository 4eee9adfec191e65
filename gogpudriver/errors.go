package gogpudriver

import "errors"

// Package errors for gogpudriver.
var (
	// ErrNoGPUBackend is returned when no gogpu backend is available.
	ErrNoGPUBackend = errors.New("gogpudriver: no GPU backend available")

	// ErrInvalidSize is returned when a buffer or texture dimension is
	// not positive.
	ErrInvalidSize = errors.New("gogpudriver: size must be positive")

	// ErrDeviceClosed is returned for operations on a closed device.
	ErrDeviceClosed = errors.New("gogpudriver: device closed")
)
