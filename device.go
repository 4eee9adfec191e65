// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfx/driver"
)

// AdapterInfo describes a physical GPU adapter.
type AdapterInfo struct {
	// Name is the human-readable adapter name.
	Name string

	// Vendor is the PCI vendor ID, or 0 when the driver does not report one.
	Vendor uint32

	// Device is the PCI device ID, or 0 when the driver does not report one.
	Device uint32

	// SoftwareRendering reports whether the adapter is a software
	// rasterizer. The value comes straight from the driver; drivers that
	// cannot determine it report false. gfx never infers it from the
	// adapter name or other heuristics.
	SoftwareRendering bool
}

// Instance enumerates the GPU adapters available on the system.
// Driver packages (e.g. gogpudriver) provide concrete implementations.
type Instance interface {
	// EnumerateAdapters returns the adapters visible to this instance.
	// The slice may be empty when no compatible adapter exists.
	EnumerateAdapters() []Adapter
}

// Adapter is a physical GPU that can be opened into a logical device.
type Adapter interface {
	// Info returns the static adapter description.
	Info() AdapterInfo

	// Open creates a logical device on this adapter.
	// Failures surface as a *DeviceCreationError.
	Open() (Device, error)
}

// Device is an opened logical device. It owns the immediate context and
// can create deferred contexts for threaded recording.
type Device interface {
	// Immediate returns the device's immediate context. The immediate
	// context is not reentrant; callers must serialize access to it.
	Immediate() driver.ImmediateContext

	// NewDeferred creates a deferred context for recording on a worker
	// goroutine. The returned context must be released by its recorder.
	NewDeferred() (driver.DeferredContext, error)

	// Close releases the device and its immediate context.
	Close() error
}

// DeviceHandle is the host-integration point for applications that already
// own a GPU device through the gpucontext ecosystem (e.g. a gogpu.App).
// Such hosts hand their provider to gfx instead of gfx creating a device.
type DeviceHandle = gpucontext.DeviceProvider
