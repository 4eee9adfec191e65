package record

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx/driver"
)

func TestBufferedReplayOrder(t *testing.T) {
	b := NewBuffered()

	b.Record(BindPipelineCommand{Pipeline: 1})
	b.Record(BindVertexBufferCommand{Slot: 0, Buffer: 2, Offset: 16})
	b.RecordBufferUpdate(2, []byte{9}, 0)
	b.Record(DrawCommand{VertexCount: 3, InstanceCount: 1})

	ctx := &mockContext{}
	b.Replay(ctx)

	want := []string{"BindPipeline", "BindVertexBuffer", "UpdateBufferRegion", "Draw"}
	if got := ctx.names(); !reflect.DeepEqual(got, want) {
		t.Errorf("replay order = %v, want %v", got, want)
	}
}

func TestBufferedBufferUpdate(t *testing.T) {
	b := NewBuffered()
	b.RecordBufferUpdate(driver.BufferHandle(7), []byte{1, 2, 3, 4}, 8)

	ctx := &mockContext{}
	b.Replay(ctx)

	if len(ctx.calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(ctx.calls))
	}
	c := ctx.calls[0]
	if c.name != "UpdateBufferRegion" {
		t.Fatalf("call = %s, want UpdateBufferRegion", c.name)
	}
	if buf := c.args[0].(driver.BufferHandle); buf != 7 {
		t.Errorf("buffer = %d, want 7", buf)
	}
	if data := c.args[1].([]byte); !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Errorf("data = %v, want [1 2 3 4]", data)
	}
	if off := c.args[2].(uint64); off != 8 {
		t.Errorf("destOffset = %d, want 8", off)
	}
}

func TestBufferedPayloadIsolation(t *testing.T) {
	b := NewBuffered()

	src := []byte{10, 20, 30}
	b.RecordBufferUpdate(1, src, 0)

	// The recording must be unaffected by caller mutation after return.
	src[0] = 0
	src[1] = 0
	src[2] = 0

	ctx := &mockContext{}
	b.Replay(ctx)

	data := ctx.calls[0].args[1].([]byte)
	if !bytes.Equal(data, []byte{10, 20, 30}) {
		t.Errorf("replayed data = %v, want [10 20 30]", data)
	}
}

func TestBufferedTextureUpdateSubresource(t *testing.T) {
	b := NewBuffered()

	kind := driver.TextureKind{Dim: driver.TextureDimCube, Levels: 4}
	region := driver.ImageRegion{
		Size:   gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 1},
		Mip:    2,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
	b.RecordTextureUpdate(3, kind, driver.CubeFaceNegX, []byte{0xAB}, region)

	ctx := &mockContext{}
	b.Replay(ctx)

	if len(ctx.calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(ctx.calls))
	}
	c := ctx.calls[0]
	if c.name != "UpdateTextureRegion" {
		t.Fatalf("call = %s, want UpdateTextureRegion", c.name)
	}
	// -X is face index 1; with 4 mip levels and mip 2 the subresource is 6.
	if sub := c.args[1].(uint32); sub != 6 {
		t.Errorf("subresource = %d, want 6", sub)
	}
}

func TestBufferedReplayDoesNotConsume(t *testing.T) {
	b := NewBuffered()
	b.Record(DrawCommand{VertexCount: 3})

	first := &mockContext{}
	second := &mockContext{}
	b.Replay(first)
	b.Replay(second)

	if len(first.calls) != 1 || len(second.calls) != 1 {
		t.Errorf("calls = %d/%d, want 1/1", len(first.calls), len(second.calls))
	}
}

func TestBufferedReset(t *testing.T) {
	b := NewBuffered()
	b.Record(DrawCommand{VertexCount: 3})
	b.RecordBufferUpdate(1, []byte{1, 2}, 0)

	b.Reset()
	b.Reset() // idempotent

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.PayloadBytes() != 0 {
		t.Errorf("PayloadBytes() = %d, want 0", b.PayloadBytes())
	}

	ctx := &mockContext{}
	b.Replay(ctx)
	if len(ctx.calls) != 0 {
		t.Errorf("replay after Reset issued %d calls, want 0", len(ctx.calls))
	}

	// The recorder is reusable after Reset.
	b.RecordBufferUpdate(1, []byte{5}, 0)
	b.Replay(ctx)
	if len(ctx.calls) != 1 {
		t.Errorf("calls after re-record = %d, want 1", len(ctx.calls))
	}
}

func TestBufferedResources(t *testing.T) {
	b := NewBuffered()

	b.Record(BindPipelineCommand{Pipeline: 100})
	b.Record(BindVertexBufferCommand{Buffer: 1})
	b.Record(BindIndexBufferCommand{Buffer: 2})
	b.RecordBufferUpdate(1, []byte{0}, 0) // duplicate of buffer 1
	b.Record(ClearColorCommand{Target: 9})
	b.RecordTextureUpdate(9, driver.TextureKind{Dim: driver.TextureDim2D}, driver.CubeFaceNone, []byte{0}, driver.ImageRegion{})
	b.Record(DrawCommand{VertexCount: 3}) // references nothing

	set := b.Resources()

	if want := []driver.BufferHandle{1, 2}; !reflect.DeepEqual(set.Buffers, want) {
		t.Errorf("Buffers = %v, want %v", set.Buffers, want)
	}
	if want := []driver.TextureHandle{9}; !reflect.DeepEqual(set.Textures, want) {
		t.Errorf("Textures = %v, want %v", set.Textures, want)
	}
	if want := []driver.PipelineHandle{100}; !reflect.DeepEqual(set.Pipelines, want) {
		t.Errorf("Pipelines = %v, want %v", set.Pipelines, want)
	}
}

func TestExecuteUnknownCommandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown command type")
		}
	}()

	execute(&mockContext{}, unknownCommand{}, nil)
}

type unknownCommand struct{}

func (unknownCommand) Type() CommandType { return CommandType(250) }
