// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gogpudriver

import (
	"bytes"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// deferredContext emulates a driver deferred context on top of gpu.Backend.
// Each call is captured as a closure over copied arguments; FinishCommandList
// snapshots the batch into a commandList that replays on the immediate
// context.
type deferredContext struct {
	ops      []func(driver.Context)
	released bool
}

func (d *deferredContext) BindPipeline(p driver.PipelineHandle) {
	d.ops = append(d.ops, func(c driver.Context) { c.BindPipeline(p) })
}

func (d *deferredContext) BindVertexBuffer(slot uint32, buf driver.BufferHandle, offset uint64) {
	d.ops = append(d.ops, func(c driver.Context) { c.BindVertexBuffer(slot, buf, offset) })
}

func (d *deferredContext) BindIndexBuffer(buf driver.BufferHandle, format driver.IndexFormat) {
	d.ops = append(d.ops, func(c driver.Context) { c.BindIndexBuffer(buf, format) })
}

func (d *deferredContext) SetViewport(vp driver.Viewport) {
	d.ops = append(d.ops, func(c driver.Context) { c.SetViewport(vp) })
}

func (d *deferredContext) SetScissor(r driver.ScissorRect) {
	d.ops = append(d.ops, func(c driver.Context) { c.SetScissor(r) })
}

func (d *deferredContext) SetBlendColor(rgba [4]float32) {
	d.ops = append(d.ops, func(c driver.Context) { c.SetBlendColor(rgba) })
}

func (d *deferredContext) ClearColor(target driver.TextureHandle, rgba [4]float32) {
	d.ops = append(d.ops, func(c driver.Context) { c.ClearColor(target, rgba) })
}

func (d *deferredContext) ClearDepthStencil(target driver.TextureHandle, depth float32, stencil uint32) {
	d.ops = append(d.ops, func(c driver.Context) { c.ClearDepthStencil(target, depth, stencil) })
}

func (d *deferredContext) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	d.ops = append(d.ops, func(c driver.Context) {
		c.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
	})
}

func (d *deferredContext) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	d.ops = append(d.ops, func(c driver.Context) {
		c.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
	})
}

// UpdateBufferRegion captures a copy of data, so the caller may reuse the
// slice as soon as the call returns.
func (d *deferredContext) UpdateBufferRegion(buf driver.BufferHandle, data []byte, destOffset uint64) {
	stable := bytes.Clone(data)
	d.ops = append(d.ops, func(c driver.Context) { c.UpdateBufferRegion(buf, stable, destOffset) })
}

// UpdateTextureRegion captures a copy of data, so the caller may reuse the
// slice as soon as the call returns.
func (d *deferredContext) UpdateTextureRegion(tex driver.TextureHandle, subresource uint32, region driver.ImageRegion, data []byte) {
	stable := bytes.Clone(data)
	d.ops = append(d.ops, func(c driver.Context) {
		c.UpdateTextureRegion(tex, subresource, region, stable)
	})
}

// ClearState discards the calls recorded so far, returning the context to
// its default state.
func (d *deferredContext) ClearState() {
	d.ops = d.ops[:0]
}

// FinishCommandList ends the batch and returns it as an executable list.
// The context is empty and ready to record again afterwards.
func (d *deferredContext) FinishCommandList() (driver.CommandList, error) {
	list := &commandList{ops: d.ops}
	d.ops = nil
	gfx.Logger().Debug("command list compiled", "ops", len(list.ops))
	return list, nil
}

// Release drops any recorded calls. Releasing more than once is a no-op.
func (d *deferredContext) Release() {
	if d.released {
		return
	}
	d.released = true
	d.ops = nil
}

var _ driver.DeferredContext = (*deferredContext)(nil)

// commandList is a compiled batch of context calls.
type commandList struct {
	ops      []func(driver.Context)
	released bool
}

func (l *commandList) replay(c driver.Context) {
	if l.released {
		gfx.Logger().Warn("execute on released command list ignored")
		return
	}
	for _, op := range l.ops {
		op(c)
	}
}

// Release frees the list. Releasing more than once is a no-op.
func (l *commandList) Release() {
	if l.released {
		return
	}
	l.released = true
	l.ops = nil
}

var _ driver.CommandList = (*commandList)(nil)
