package record

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// Recorder is the capability other subsystems record against. Exactly two
// conforming strategies exist: [Buffered] and [Deferred], selected at
// construction time.
//
// A Recorder instance is not safe for concurrent use; drive it from one
// goroutine at a time. Once a Record* call returns, the operation is
// committed (stored or already issued); discarding unwanted work is only
// possible via Reset before replay or finish.
type Recorder interface {
	// Reset discards all accumulated work. It is idempotent and is a
	// no-op on a freshly constructed instance.
	Reset()

	// Record appends or executes one non-payload command in order.
	Record(cmd Command)

	// RecordBufferUpdate captures or forwards a buffer update. The data
	// bytes are copied before the call returns; the caller may reuse the
	// slice immediately.
	RecordBufferUpdate(buf driver.BufferHandle, data []byte, destOffset uint64)

	// RecordTextureUpdate captures or forwards a texture update, carrying
	// the subresource addressing the translation engine needs. The data
	// bytes are copied before the call returns.
	RecordTextureUpdate(tex driver.TextureHandle, kind driver.TextureKind, face driver.CubeFace, data []byte, region driver.ImageRegion)
}

// ResourceSet lists the resources a recording references, deduplicated in
// first-use order. The submission layer pins these for the lifetime of the
// submitted work.
type ResourceSet struct {
	Buffers   []driver.BufferHandle
	Textures  []driver.TextureHandle
	Pipelines []driver.PipelineHandle
}

// Buffered accumulates commands and payload bytes for later replay.
//
// After every Record* call returns, the recorder holds no reference to
// anything outside itself: commands are plain data and payloads live in the
// private arena. A Buffered recorder can therefore be handed to another
// goroutine for replay, and is reused across record/replay cycles — Reset
// keeps the allocated capacity of both sequence and arena.
type Buffered struct {
	commands []Command
	payloads PayloadArena
}

// NewBuffered creates an empty buffered recorder.
func NewBuffered() *Buffered {
	return &Buffered{
		commands: make([]Command, 0, 256),
	}
}

// Reset clears the command sequence and arena, retaining capacity.
func (b *Buffered) Reset() {
	b.commands = b.commands[:0]
	b.payloads.Reset()
}

// Record appends cmd to the sequence unchanged.
func (b *Buffered) Record(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// RecordBufferUpdate copies data into the arena, then appends an
// UpdateBufferCommand referencing the copy.
func (b *Buffered) RecordBufferUpdate(buf driver.BufferHandle, data []byte, destOffset uint64) {
	ref := b.payloads.Add(data)
	b.commands = append(b.commands, UpdateBufferCommand{
		Buffer:     buf,
		Payload:    ref,
		DestOffset: destOffset,
	})
}

// RecordTextureUpdate copies the pixel bytes into the arena, then appends an
// UpdateTextureCommand referencing the copy.
func (b *Buffered) RecordTextureUpdate(tex driver.TextureHandle, kind driver.TextureKind, face driver.CubeFace, data []byte, region driver.ImageRegion) {
	ref := b.payloads.Add(data)
	b.commands = append(b.commands, UpdateTextureCommand{
		Texture: tex,
		Kind:    kind,
		Face:    face,
		Payload: ref,
		Region:  region,
	})
}

// Len returns the number of recorded commands.
func (b *Buffered) Len() int {
	return len(b.commands)
}

// PayloadBytes returns the number of payload bytes held in the arena.
func (b *Buffered) PayloadBytes() int {
	return b.payloads.Len()
}

// Commands returns the recorded command sequence in insertion order.
// The slice is owned by the recorder; callers must not modify it.
func (b *Buffered) Commands() []Command {
	return b.commands
}

// Replay executes the recorded sequence, in order, against ctx.
// Replay does not consume the recording; it may be replayed again or
// cleared with Reset. Access to ctx must be serialized with any other use
// of the same context.
func (b *Buffered) Replay(ctx driver.Context) {
	gfx.Logger().Debug("replaying recording",
		"commands", len(b.commands), "payloadBytes", b.payloads.Len())
	for _, cmd := range b.commands {
		execute(ctx, cmd, &b.payloads)
	}
}

// Resources returns the set of resource handles the recording references.
func (b *Buffered) Resources() ResourceSet {
	var set ResourceSet
	bufSeen := make(map[driver.BufferHandle]struct{})
	texSeen := make(map[driver.TextureHandle]struct{})
	pipSeen := make(map[driver.PipelineHandle]struct{})

	addBuf := func(h driver.BufferHandle) {
		if _, ok := bufSeen[h]; !ok {
			bufSeen[h] = struct{}{}
			set.Buffers = append(set.Buffers, h)
		}
	}
	addTex := func(h driver.TextureHandle) {
		if _, ok := texSeen[h]; !ok {
			texSeen[h] = struct{}{}
			set.Textures = append(set.Textures, h)
		}
	}

	for _, cmd := range b.commands {
		switch c := cmd.(type) {
		case BindPipelineCommand:
			if _, ok := pipSeen[c.Pipeline]; !ok {
				pipSeen[c.Pipeline] = struct{}{}
				set.Pipelines = append(set.Pipelines, c.Pipeline)
			}
		case BindVertexBufferCommand:
			addBuf(c.Buffer)
		case BindIndexBufferCommand:
			addBuf(c.Buffer)
		case UpdateBufferCommand:
			addBuf(c.Buffer)
		case ClearColorCommand:
			addTex(c.Target)
		case ClearDepthStencilCommand:
			addTex(c.Target)
		case UpdateTextureCommand:
			addTex(c.Texture)
		}
	}
	return set
}
