package gogpudriver

import (
	"github.com/gogpu/gogpu/gpu"
	"github.com/gogpu/gogpu/gpu/types"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// Instance enumerates adapters through the active gogpu backend.
type Instance struct {
	backend  gpu.Backend
	instance types.Instance
}

// NewInstance creates an instance on the active gogpu backend,
// initializing the default backend if none is registered yet.
// Failures surface as *gfx.DeviceCreationError.
func NewInstance() (*Instance, error) {
	backend := gpu.GetBackend()
	if backend == nil {
		if err := gpu.InitDefaultBackend(); err != nil {
			return nil, &gfx.DeviceCreationError{Detail: "init GPU backend", Err: err}
		}
		backend = gpu.GetBackend()
	}
	if backend == nil {
		return nil, &gfx.DeviceCreationError{Detail: "no GPU backend registered", Err: ErrNoGPUBackend}
	}

	instance, err := backend.CreateInstance()
	if err != nil {
		return nil, &gfx.DeviceCreationError{Detail: "create instance", Err: err}
	}

	gfx.Logger().Info("gogpu instance created", "backend", backend.Name())
	return &Instance{backend: backend, instance: instance}, nil
}

// EnumerateAdapters returns the adapters visible to this instance.
// gpu.Backend exposes adapter selection, not enumeration, so at most one
// adapter (the high-performance pick) is returned.
func (i *Instance) EnumerateAdapters() []gfx.Adapter {
	adapter, err := i.backend.RequestAdapter(i.instance, &types.AdapterOptions{
		PowerPreference: types.PowerPreferenceHighPerformance,
	})
	if err != nil {
		gfx.Logger().Warn("adapter request failed", "err", err)
		return nil
	}
	return []gfx.Adapter{&Adapter{instance: i, adapter: adapter}}
}

// Adapter is a physical GPU selected through gpu.Backend.
type Adapter struct {
	instance *Instance
	adapter  types.Adapter
}

// Info returns the adapter description. gpu.Backend does not report PCI IDs
// or a software-rasterizer flag, so those fields stay zero; the flag is
// never inferred from the name.
func (a *Adapter) Info() gfx.AdapterInfo {
	return gfx.AdapterInfo{Name: a.instance.backend.Name()}
}

// Open creates a logical device with its immediate context on this adapter.
func (a *Adapter) Open() (gfx.Device, error) {
	backend := a.instance.backend

	device, err := backend.RequestDevice(a.adapter, &types.DeviceOptions{
		Label: "gfx-device",
	})
	if err != nil {
		return nil, &gfx.DeviceCreationError{Detail: "request device", Err: err}
	}
	queue := backend.GetQueue(device)

	d := &Device{
		backend: backend,
		device:  device,
		queue:   queue,
	}
	d.ctx = newContext(backend, device, queue)
	gfx.Logger().Info("gfx device created", "backend", backend.Name())
	return d, nil
}

// Device is an opened logical device on the gogpu backend.
type Device struct {
	backend gpu.Backend
	device  types.Device
	queue   types.Queue
	ctx     *Context
	closed  bool
}

// Immediate returns the device's immediate context. The context doubles as
// the device's resource factory; see [Context].
func (d *Device) Immediate() driver.ImmediateContext {
	return d.ctx
}

// NewDeferred creates a software-emulated deferred context. gpu.Backend has
// no native deferred-recording object, so recording is batched driver-side
// and compiled into an executable command list.
func (d *Device) NewDeferred() (driver.DeferredContext, error) {
	if d.closed {
		return nil, &gfx.DeviceCreationError{Detail: "create deferred context", Err: ErrDeviceClosed}
	}
	return &deferredContext{}, nil
}

// Close marks the device closed. Individual buffers and textures do not
// need explicit release here: they are reclaimed when the gogpu backend is
// destroyed.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	gfx.Logger().Info("gfx device closed")
	return nil
}

var (
	_ gfx.Instance = (*Instance)(nil)
	_ gfx.Adapter  = (*Adapter)(nil)
	_ gfx.Device   = (*Device)(nil)
)
