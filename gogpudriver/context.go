// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpudriver

import (
	"sync"

	"github.com/gogpu/gogpu/gpu"
	"github.com/gogpu/gogpu/gpu/types"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// textureEntry is the per-texture state kept alongside the backend handle.
// The mip count recovers the (layer, mip) pair from a flattened subresource
// index at upload time.
type textureEntry struct {
	tex    types.Texture
	mips   uint32
	format gputypes.TextureFormat
}

// Context is the immediate context on a gogpu device. It owns the resource
// tables, so it is also the factory for buffers and textures, and it
// implements driver.Pinner for the submission layer.
type Context struct {
	backend gpu.Backend
	device  types.Device
	queue   types.Queue

	buffers  driver.Table[types.Buffer]
	textures driver.Table[textureEntry]

	warnDraw sync.Once
}

func newContext(backend gpu.Backend, device types.Device, queue types.Queue) *Context {
	return &Context{backend: backend, device: device, queue: queue}
}

// CreateBuffer allocates a GPU buffer of the given size and usage.
func (c *Context) CreateBuffer(size uint64, usage types.BufferUsage) (driver.BufferHandle, error) {
	if size == 0 {
		return 0, ErrInvalidSize
	}
	buf, err := c.backend.CreateBuffer(c.device, &types.BufferDescriptor{
		Label: "gfx-buffer",
		Size:  size,
		Usage: usage,
	})
	if err != nil {
		return 0, err
	}
	h := driver.BufferHandle(c.buffers.Insert(buf))
	gfx.Logger().Debug("buffer created", "handle", uint64(h), "size", size)
	return h, nil
}

// DestroyBuffer releases the buffer behind h. If the buffer is pinned by
// in-flight work, the native release is deferred to the last unpin.
func (c *Context) DestroyBuffer(h driver.BufferHandle) {
	if buf, ok := c.buffers.Remove(uint64(h)); ok {
		c.backend.ReleaseBuffer(buf)
	}
}

// CreateTexture allocates a 2D GPU texture. For cube textures, layers is 6
// and uploads address faces through the subresource index.
func (c *Context) CreateTexture(width, height, layers, mips uint32, format gputypes.TextureFormat) (driver.TextureHandle, error) {
	if width == 0 || height == 0 {
		return 0, ErrInvalidSize
	}
	if layers == 0 {
		layers = 1
	}
	if mips == 0 {
		mips = 1
	}
	tex, err := c.backend.CreateTexture(c.device, &types.TextureDescriptor{
		Label: "gfx-texture",
		Size: types.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: layers,
		},
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        convertFormat(format),
		Usage:         types.TextureUsageCopySrc | types.TextureUsageCopyDst | types.TextureUsageStorageBinding,
	})
	if err != nil {
		return 0, err
	}
	h := driver.TextureHandle(c.textures.Insert(textureEntry{tex: tex, mips: mips, format: format}))
	gfx.Logger().Debug("texture created",
		"handle", uint64(h), "width", width, "height", height, "mips", mips)
	return h, nil
}

// DestroyTexture releases the texture behind h. If the texture is pinned by
// in-flight work, the native release is deferred to the last unpin.
func (c *Context) DestroyTexture(h driver.TextureHandle) {
	if e, ok := c.textures.Remove(uint64(h)); ok {
		c.backend.ReleaseTexture(e.tex)
	}
}

// PinBuffer implements driver.Pinner.
func (c *Context) PinBuffer(h driver.BufferHandle) bool {
	return c.buffers.Pin(uint64(h))
}

// UnpinBuffer implements driver.Pinner.
func (c *Context) UnpinBuffer(h driver.BufferHandle) {
	if buf, release := c.buffers.Unpin(uint64(h)); release {
		c.backend.ReleaseBuffer(buf)
	}
}

// PinTexture implements driver.Pinner.
func (c *Context) PinTexture(h driver.TextureHandle) bool {
	return c.textures.Pin(uint64(h))
}

// UnpinTexture implements driver.Pinner.
func (c *Context) UnpinTexture(h driver.TextureHandle) {
	if e, release := c.textures.Unpin(uint64(h)); release {
		c.backend.ReleaseTexture(e.tex)
	}
}

// UpdateBufferRegion copies data into buf at destOffset through the backend
// queue.
func (c *Context) UpdateBufferRegion(buf driver.BufferHandle, data []byte, destOffset uint64) {
	b, ok := c.buffers.Resolve(uint64(buf))
	if !ok {
		gfx.Logger().Warn("buffer update on stale handle", "handle", uint64(buf))
		return
	}
	if len(data) == 0 {
		return
	}
	c.backend.WriteBuffer(c.queue, b, destOffset, data)
}

// UpdateTextureRegion copies data into the given subresource of tex. The
// subresource index is unflattened against the texture's mip count: the
// array layer is subresource/mips and the mip level is subresource%mips.
func (c *Context) UpdateTextureRegion(tex driver.TextureHandle, subresource uint32, region driver.ImageRegion, data []byte) {
	e, ok := c.textures.Resolve(uint64(tex))
	if !ok {
		gfx.Logger().Warn("texture update on stale handle", "handle", uint64(tex))
		return
	}
	if len(data) == 0 {
		return
	}

	layer := subresource / e.mips
	mip := subresource % e.mips

	origin := convertOrigin(region.Origin)
	origin.Z += layer

	bpp := formatBytesPerPixel(e.format)
	extent := convertExtent(region.Size)
	c.backend.WriteTexture(c.queue,
		&types.ImageCopyTexture{
			Texture:  e.tex,
			MipLevel: mip,
			Origin:   origin,
			Aspect:   types.TextureAspectAll,
		},
		data,
		&types.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  region.Size.Width * bpp,
			RowsPerImage: region.Size.Height,
		},
		&extent)
}

// ExecuteCommandList replays a command list compiled by a deferred context
// from this package.
func (c *Context) ExecuteCommandList(list driver.CommandList) {
	l, ok := list.(*commandList)
	if !ok {
		gfx.Logger().Warn("foreign command list ignored")
		return
	}
	l.replay(c)
}

// BindPipeline is not supported by gpu.Backend; see the package doc.
func (c *Context) BindPipeline(p driver.PipelineHandle) { c.unsupported() }

// BindVertexBuffer is not supported by gpu.Backend; see the package doc.
func (c *Context) BindVertexBuffer(slot uint32, buf driver.BufferHandle, offset uint64) {
	c.unsupported()
}

// BindIndexBuffer is not supported by gpu.Backend; see the package doc.
func (c *Context) BindIndexBuffer(buf driver.BufferHandle, format driver.IndexFormat) {
	c.unsupported()
}

// SetViewport is not supported by gpu.Backend; see the package doc.
func (c *Context) SetViewport(vp driver.Viewport) { c.unsupported() }

// SetScissor is not supported by gpu.Backend; see the package doc.
func (c *Context) SetScissor(r driver.ScissorRect) { c.unsupported() }

// SetBlendColor is not supported by gpu.Backend; see the package doc.
func (c *Context) SetBlendColor(rgba [4]float32) { c.unsupported() }

// ClearColor is not supported by gpu.Backend; see the package doc.
func (c *Context) ClearColor(target driver.TextureHandle, rgba [4]float32) { c.unsupported() }

// ClearDepthStencil is not supported by gpu.Backend; see the package doc.
func (c *Context) ClearDepthStencil(target driver.TextureHandle, depth float32, stencil uint32) {
	c.unsupported()
}

// Draw is not supported by gpu.Backend; see the package doc.
func (c *Context) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	c.unsupported()
}

// DrawIndexed is not supported by gpu.Backend; see the package doc.
func (c *Context) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	c.unsupported()
}

// ClearState is a no-op: gpu.Backend keeps no bind state on the queue path.
func (c *Context) ClearState() {}

func (c *Context) unsupported() {
	c.warnDraw.Do(func() {
		gfx.Logger().Warn("draw and bind operations are not exposed by gpu.Backend; dropped",
			"backend", c.backend.Name())
	})
}

var (
	_ driver.ImmediateContext = (*Context)(nil)
	_ driver.Pinner           = (*Context)(nil)
)
