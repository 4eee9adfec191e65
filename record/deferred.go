package record

import (
	"fmt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// Deferred forwards every operation straight to the native driver's
// deferred context. Nothing is buffered locally: the driver performs its own
// internal batching and is later finished into a compiled command list.
//
// The wrapped context is borrowed, not owned outright; Release frees it
// exactly once. The context is not reentrant, so a Deferred recorder must
// be driven by one goroutine at a time — typically one recorder per worker,
// one native context per recorder.
type Deferred struct {
	ctx      driver.DeferredContext
	list     driver.CommandList
	released bool
}

// NewDeferred wraps a native deferred context in a recorder.
func NewDeferred(ctx driver.DeferredContext) *Deferred {
	return &Deferred{ctx: ctx}
}

// Reset releases the compiled command list, if one exists, then resets the
// native context to its default state. It is idempotent.
func (d *Deferred) Reset() {
	if d.list != nil {
		d.list.Release()
		d.list = nil
	}
	d.ctx.ClearState()
}

// Record executes cmd immediately against the deferred context.
func (d *Deferred) Record(cmd Command) {
	execute(d.ctx, cmd, nil)
}

// RecordBufferUpdate forwards the update synchronously. The native context
// copies the bytes itself, so no arena is involved.
func (d *Deferred) RecordBufferUpdate(buf driver.BufferHandle, data []byte, destOffset uint64) {
	executeBufferUpdate(d.ctx, buf, data, destOffset)
}

// RecordTextureUpdate forwards the update synchronously. The native context
// copies the bytes itself, so no arena is involved.
func (d *Deferred) RecordTextureUpdate(tex driver.TextureHandle, kind driver.TextureKind, face driver.CubeFace, data []byte, region driver.ImageRegion) {
	executeTextureUpdate(d.ctx, tex, kind, face, data, region)
}

// Finish compiles the recorded work into a native command list and retains
// it on the recorder. A previously compiled list must be released via Reset
// first: a recorder never holds two live compiled lists.
func (d *Deferred) Finish() (driver.CommandList, error) {
	if d.list != nil {
		return nil, ErrCommandListLive
	}
	list, err := d.ctx.FinishCommandList()
	if err != nil {
		return nil, fmt.Errorf("record: finish command list: %w", err)
	}
	d.list = list
	gfx.Logger().Debug("compiled deferred command list")
	return list, nil
}

// CommandList returns the compiled command list from the last Finish, or
// nil if none is live.
func (d *Deferred) CommandList() driver.CommandList {
	return d.list
}

// Release frees the compiled list, if any, and releases the wrapped native
// context. Release is idempotent; the recorder must not be used afterwards.
func (d *Deferred) Release() {
	if d.released {
		return
	}
	d.released = true
	if d.list != nil {
		d.list.Release()
		d.list = nil
	}
	d.ctx.Release()
}
