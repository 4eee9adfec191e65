package record

import (
	"fmt"

	"github.com/gogpu/gfx/driver"
)

// Translation engine
//
// These functions are the single mapping from a command (with its payload
// resolved, if any) to native driver calls. Both strategies go through them:
// Buffered at replay time, Deferred at record time. No strategy-specific
// branching lives here; the strategies differ only in buffering policy.

// execute translates one command to the corresponding native calls.
// Payload-bearing commands resolve their bytes through payloads; passing a
// payload-bearing command with a nil arena is a programming error.
func execute(ctx driver.Context, cmd Command, payloads *PayloadArena) {
	switch c := cmd.(type) {
	case BindPipelineCommand:
		ctx.BindPipeline(c.Pipeline)
	case BindVertexBufferCommand:
		ctx.BindVertexBuffer(c.Slot, c.Buffer, c.Offset)
	case BindIndexBufferCommand:
		ctx.BindIndexBuffer(c.Buffer, c.Format)
	case SetViewportCommand:
		ctx.SetViewport(c.Viewport)
	case SetScissorCommand:
		ctx.SetScissor(c.Rect)
	case SetBlendColorCommand:
		ctx.SetBlendColor(c.RGBA)
	case ClearColorCommand:
		ctx.ClearColor(c.Target, c.RGBA)
	case ClearDepthStencilCommand:
		ctx.ClearDepthStencil(c.Target, c.Depth, c.Stencil)
	case DrawCommand:
		ctx.Draw(c.VertexCount, c.InstanceCount, c.FirstVertex, c.FirstInstance)
	case DrawIndexedCommand:
		ctx.DrawIndexed(c.IndexCount, c.InstanceCount, c.FirstIndex, c.BaseVertex, c.FirstInstance)
	case UpdateBufferCommand:
		if payloads == nil {
			panic("record: UpdateBufferCommand requires an arena; use RecordBufferUpdate")
		}
		executeBufferUpdate(ctx, c.Buffer, payloads.Get(c.Payload), c.DestOffset)
	case UpdateTextureCommand:
		if payloads == nil {
			panic("record: UpdateTextureCommand requires an arena; use RecordTextureUpdate")
		}
		executeTextureUpdate(ctx, c.Texture, c.Kind, c.Face, payloads.Get(c.Payload), c.Region)
	default:
		panic(fmt.Sprintf("record: unknown command type %T", cmd))
	}
}

// executeBufferUpdate issues a sub-region copy into buf at destOffset.
// The copy length is the payload length.
func executeBufferUpdate(ctx driver.Context, buf driver.BufferHandle, data []byte, destOffset uint64) {
	ctx.UpdateBufferRegion(buf, data, destOffset)
}

// executeTextureUpdate computes the native subresource index from the
// texture kind, face, and mip level, then issues a sub-region copy.
func executeTextureUpdate(ctx driver.Context, tex driver.TextureHandle, kind driver.TextureKind, face driver.CubeFace, data []byte, region driver.ImageRegion) {
	sub := driver.Subresource(kind, face, region.Mip)
	ctx.UpdateTextureRegion(tex, sub, region, data)
}
