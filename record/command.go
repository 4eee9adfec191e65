package record

import "github.com/gogpu/gfx/driver"

// CommandType identifies the type of a command.
// Each command type corresponds to one native driver operation.
type CommandType uint8

const (
	// State commands
	CmdBindPipeline     CommandType = iota // Bind pipeline state object
	CmdBindVertexBuffer                    // Bind a vertex buffer slot
	CmdBindIndexBuffer                     // Bind the index buffer
	CmdSetViewport                         // Set viewport transform
	CmdSetScissor                          // Set scissor rectangle
	CmdSetBlendColor                       // Set constant blend color

	// Clear commands
	CmdClearColor        // Clear a render target
	CmdClearDepthStencil // Clear depth/stencil

	// Draw commands
	CmdDraw        // Non-indexed draw
	CmdDrawIndexed // Indexed draw

	// Resource update commands (payload-bearing)
	CmdUpdateBuffer  // Copy bytes into a buffer region
	CmdUpdateTexture // Copy texels into a texture subresource
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBindPipeline:      "BindPipeline",
	CmdBindVertexBuffer:  "BindVertexBuffer",
	CmdBindIndexBuffer:   "BindIndexBuffer",
	CmdSetViewport:       "SetViewport",
	CmdSetScissor:        "SetScissor",
	CmdSetBlendColor:     "SetBlendColor",
	CmdClearColor:        "ClearColor",
	CmdClearDepthStencil: "ClearDepthStencil",
	CmdDraw:              "Draw",
	CmdDrawIndexed:       "DrawIndexed",
	CmdUpdateBuffer:      "UpdateBuffer",
	CmdUpdateTexture:     "UpdateTexture",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain data: recording stores them unchanged and replay
// translates them 1:1 to native driver calls. Apart from the two update
// commands, a command carries no payload reference and no further
// invariants beyond "record then replay verbatim".
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PayloadRef locates a byte payload inside a PayloadArena.
//
// A PayloadRef is only meaningful relative to the arena that issued it.
// It is never serialized and never compared across arenas.
type PayloadRef struct {
	// Offset is the byte offset of the payload within the arena.
	Offset int
	// Length is the payload length in bytes.
	Length int
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// BindPipelineCommand binds a pipeline state object.
type BindPipelineCommand struct {
	// Pipeline is the pipeline to bind.
	Pipeline driver.PipelineHandle
}

// Type implements Command.
func (BindPipelineCommand) Type() CommandType { return CmdBindPipeline }

// BindVertexBufferCommand binds a buffer to a vertex input slot.
type BindVertexBufferCommand struct {
	// Slot is the vertex input slot.
	Slot uint32
	// Buffer is the vertex buffer to bind.
	Buffer driver.BufferHandle
	// Offset is the byte offset of the first vertex.
	Offset uint64
}

// Type implements Command.
func (BindVertexBufferCommand) Type() CommandType { return CmdBindVertexBuffer }

// BindIndexBufferCommand binds the index buffer.
type BindIndexBufferCommand struct {
	// Buffer is the index buffer to bind.
	Buffer driver.BufferHandle
	// Format is the index element type.
	Format driver.IndexFormat
}

// Type implements Command.
func (BindIndexBufferCommand) Type() CommandType { return CmdBindIndexBuffer }

// SetViewportCommand sets the viewport transform.
type SetViewportCommand struct {
	// Viewport is the new viewport.
	Viewport driver.Viewport
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// SetScissorCommand sets the scissor rectangle.
type SetScissorCommand struct {
	// Rect is the new scissor rectangle.
	Rect driver.ScissorRect
}

// Type implements Command.
func (SetScissorCommand) Type() CommandType { return CmdSetScissor }

// SetBlendColorCommand sets the constant blend color.
type SetBlendColorCommand struct {
	// RGBA is the blend color components.
	RGBA [4]float32
}

// Type implements Command.
func (SetBlendColorCommand) Type() CommandType { return CmdSetBlendColor }

// --------------------------------------------------------------------------
// Clear Commands
// --------------------------------------------------------------------------

// ClearColorCommand clears a render target to a color.
type ClearColorCommand struct {
	// Target is the render target texture.
	Target driver.TextureHandle
	// RGBA is the clear color.
	RGBA [4]float32
}

// Type implements Command.
func (ClearColorCommand) Type() CommandType { return CmdClearColor }

// ClearDepthStencilCommand clears the depth/stencil attachment of a target.
type ClearDepthStencilCommand struct {
	// Target is the depth/stencil texture.
	Target driver.TextureHandle
	// Depth is the clear depth value.
	Depth float32
	// Stencil is the clear stencil value.
	Stencil uint32
}

// Type implements Command.
func (ClearDepthStencilCommand) Type() CommandType { return CmdClearDepthStencil }

// --------------------------------------------------------------------------
// Draw Commands
// --------------------------------------------------------------------------

// DrawCommand issues a non-indexed draw.
type DrawCommand struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// DrawIndexedCommand issues an indexed draw.
type DrawIndexedCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}

// Type implements Command.
func (DrawIndexedCommand) Type() CommandType { return CmdDrawIndexed }

// --------------------------------------------------------------------------
// Resource Update Commands
// --------------------------------------------------------------------------

// UpdateBufferCommand copies payload bytes into a buffer region.
// The payload lives in the recording arena, never in caller memory.
type UpdateBufferCommand struct {
	// Buffer is the destination buffer.
	Buffer driver.BufferHandle
	// Payload references the bytes in the recorder's arena.
	Payload PayloadRef
	// DestOffset is the destination byte offset within the buffer.
	DestOffset uint64
}

// Type implements Command.
func (UpdateBufferCommand) Type() CommandType { return CmdUpdateBuffer }

// UpdateTextureCommand copies payload texels into a texture subresource.
type UpdateTextureCommand struct {
	// Texture is the destination texture.
	Texture driver.TextureHandle
	// Kind describes the texture shape for subresource addressing.
	Kind driver.TextureKind
	// Face selects a cube face, or CubeFaceNone for non-cube textures.
	Face driver.CubeFace
	// Payload references the texel bytes in the recorder's arena.
	Payload PayloadRef
	// Region addresses the destination mip level and sub-region.
	Region driver.ImageRegion
}

// Type implements Command.
func (UpdateTextureCommand) Type() CommandType { return CmdUpdateTexture }
