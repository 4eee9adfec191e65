package record

import (
	"github.com/gogpu/gfx/driver"
)

// call is one captured driver call.
type call struct {
	name string
	args []any
}

// mockContext records every driver call it receives, copying payload bytes
// so tests can inspect what the driver saw.
type mockContext struct {
	calls []call
}

func (m *mockContext) add(name string, args ...any) {
	m.calls = append(m.calls, call{name: name, args: args})
}

func (m *mockContext) names() []string {
	names := make([]string, len(m.calls))
	for i, c := range m.calls {
		names[i] = c.name
	}
	return names
}

func (m *mockContext) BindPipeline(p driver.PipelineHandle) {
	m.add("BindPipeline", p)
}

func (m *mockContext) BindVertexBuffer(slot uint32, buf driver.BufferHandle, offset uint64) {
	m.add("BindVertexBuffer", slot, buf, offset)
}

func (m *mockContext) BindIndexBuffer(buf driver.BufferHandle, format driver.IndexFormat) {
	m.add("BindIndexBuffer", buf, format)
}

func (m *mockContext) SetViewport(vp driver.Viewport) {
	m.add("SetViewport", vp)
}

func (m *mockContext) SetScissor(r driver.ScissorRect) {
	m.add("SetScissor", r)
}

func (m *mockContext) SetBlendColor(rgba [4]float32) {
	m.add("SetBlendColor", rgba)
}

func (m *mockContext) ClearColor(target driver.TextureHandle, rgba [4]float32) {
	m.add("ClearColor", target, rgba)
}

func (m *mockContext) ClearDepthStencil(target driver.TextureHandle, depth float32, stencil uint32) {
	m.add("ClearDepthStencil", target, depth, stencil)
}

func (m *mockContext) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	m.add("Draw", vertexCount, instanceCount, firstVertex, firstInstance)
}

func (m *mockContext) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	m.add("DrawIndexed", indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

func (m *mockContext) UpdateBufferRegion(buf driver.BufferHandle, data []byte, destOffset uint64) {
	stable := append([]byte(nil), data...)
	m.add("UpdateBufferRegion", buf, stable, destOffset)
}

func (m *mockContext) UpdateTextureRegion(tex driver.TextureHandle, subresource uint32, region driver.ImageRegion, data []byte) {
	stable := append([]byte(nil), data...)
	m.add("UpdateTextureRegion", tex, subresource, region, stable)
}

func (m *mockContext) ClearState() {
	m.add("ClearState")
}

var _ driver.Context = (*mockContext)(nil)

// mockCommandList counts releases for lifecycle tests.
type mockCommandList struct {
	releases int
}

func (l *mockCommandList) Release() { l.releases++ }

// mockDeferredContext forwards calls like mockContext and compiles them into
// mockCommandList values on finish.
type mockDeferredContext struct {
	mockContext
	finishErr error
	finished  int
	releases  int
	lists     []*mockCommandList
}

func (m *mockDeferredContext) FinishCommandList() (driver.CommandList, error) {
	if m.finishErr != nil {
		return nil, m.finishErr
	}
	m.finished++
	list := &mockCommandList{}
	m.lists = append(m.lists, list)
	return list, nil
}

func (m *mockDeferredContext) Release() { m.releases++ }

var _ driver.DeferredContext = (*mockDeferredContext)(nil)
