package driver

// Resource handles
//
// Handles are opaque, copyable tokens standing for native GPU resources.
// They are plain integers: comparable, hashable, and safe to pass between
// goroutines. A handle packs a table slot index in the low 32 bits and a
// generation counter in the high 32 bits. Generations start at 1, so the
// zero value of every handle type is invalid.
//
// Handles carry no lifetime. Resolving one to a live native resource is the
// job of the driver's Table; a stale handle (its slot was freed and reused)
// simply fails to resolve.

// BufferHandle is an opaque handle to a GPU buffer.
type BufferHandle uint64

// TextureHandle is an opaque handle to a GPU texture.
type TextureHandle uint64

// PipelineHandle is an opaque handle to a compiled pipeline state object.
type PipelineHandle uint64

// Valid reports whether the handle was issued by a Table.
func (h BufferHandle) Valid() bool { return h != 0 }

// Valid reports whether the handle was issued by a Table.
func (h TextureHandle) Valid() bool { return h != 0 }

// Valid reports whether the handle was issued by a Table.
func (h PipelineHandle) Valid() bool { return h != 0 }

// packHandle builds a handle value from a slot index and generation.
func packHandle(index, gen uint32) uint64 {
	return uint64(gen)<<32 | uint64(index)
}

// unpackHandle splits a handle value into slot index and generation.
func unpackHandle(h uint64) (index, gen uint32) {
	return uint32(h), uint32(h >> 32)
}
