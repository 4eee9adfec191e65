package driver

// IndexFormat is the element type of an index buffer.
type IndexFormat uint8

const (
	// IndexUint16 selects 16-bit indices.
	IndexUint16 IndexFormat = iota
	// IndexUint32 selects 32-bit indices.
	IndexUint32
)

// Viewport describes the viewport transform.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// ScissorRect is an axis-aligned scissor rectangle in pixels.
type ScissorRect struct {
	X, Y          int32
	Width, Height uint32
}

// Context is the set of native driver calls the translation engine issues.
//
// Preconditions (resource validity, format compatibility, region bounds)
// are validated by the layers that created the resources; Context
// implementations do not re-validate, and a violated precondition is a
// programming error, not a recoverable condition.
//
// A Context is not reentrant: exactly one goroutine may drive a given
// instance at a time.
type Context interface {
	// BindPipeline makes p the active pipeline state object.
	BindPipeline(p PipelineHandle)

	// BindVertexBuffer binds buf to the given vertex slot.
	BindVertexBuffer(slot uint32, buf BufferHandle, offset uint64)

	// BindIndexBuffer makes buf the active index buffer.
	BindIndexBuffer(buf BufferHandle, format IndexFormat)

	// SetViewport sets the viewport transform.
	SetViewport(vp Viewport)

	// SetScissor sets the scissor rectangle.
	SetScissor(r ScissorRect)

	// SetBlendColor sets the constant blend color.
	SetBlendColor(rgba [4]float32)

	// ClearColor clears a render target to the given color.
	ClearColor(target TextureHandle, rgba [4]float32)

	// ClearDepthStencil clears the depth/stencil attachment of target.
	ClearDepthStencil(target TextureHandle, depth float32, stencil uint32)

	// Draw issues a non-indexed draw call.
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)

	// DrawIndexed issues an indexed draw call.
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)

	// UpdateBufferRegion copies data into buf starting at destOffset.
	// The driver copies synchronously; data may be reused once the call
	// returns.
	UpdateBufferRegion(buf BufferHandle, data []byte, destOffset uint64)

	// UpdateTextureRegion copies data into the given subresource of tex,
	// addressed by region. The driver copies synchronously.
	UpdateTextureRegion(tex TextureHandle, subresource uint32, region ImageRegion, data []byte)

	// ClearState resets the context to its default state: no bound
	// pipeline, buffers, or targets.
	ClearState()
}

// ImmediateContext is a Context whose calls execute directly on the device.
// It additionally executes command lists compiled by deferred contexts.
// Access to an immediate context must be serialized with every other use of
// it, including replay of buffered recordings.
type ImmediateContext interface {
	Context

	// ExecuteCommandList runs a compiled command list on the device.
	ExecuteCommandList(list CommandList)
}

// DeferredContext is the driver's own deferred-recording object. Calls are
// batched internally by the driver and compiled into a CommandList by
// FinishCommandList.
type DeferredContext interface {
	Context

	// FinishCommandList ends recording and returns the compiled list.
	// The context is ready to record again afterwards.
	FinishCommandList() (CommandList, error)

	// Release frees the native context. Releasing more than once is a
	// no-op; using the context after Release is a programming error.
	Release()
}

// CommandList is a compiled batch of driver calls produced by a
// DeferredContext. It is executed on an ImmediateContext and must be
// released exactly once when no longer needed.
type CommandList interface {
	// Release frees the native command list. Releasing more than once is
	// a no-op.
	Release()
}
