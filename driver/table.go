package driver

import "sync"

// tableSlot holds one resource and its bookkeeping.
type tableSlot[T any] struct {
	value T
	gen   uint32
	live  bool
	pins  uint32

	// zombie marks a slot that was removed while pinned. The native
	// resource stays alive until the last unpin releases it.
	zombie bool
}

// Table maps generation-checked handles to live native resources.
//
// A Table is owned by a driver implementation, never by the recording core.
// Inserting a resource issues a packed handle value (see packHandle); the
// driver converts it to the appropriate typed handle. Removing a resource
// bumps the slot generation, so handles held elsewhere go stale instead of
// dangling.
//
// Pinning keeps a resource alive across queue submission: Remove on a
// pinned slot defers the actual release until the last Unpin, which then
// hands the value back to the caller for native destruction.
//
// Table is safe for concurrent use.
type Table[T any] struct {
	mu    sync.RWMutex
	slots []tableSlot[T]
	free  []uint32
}

// Insert stores v and returns its packed handle value.
func (t *Table[T]) Insert(v T) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[idx]
		s.value = v
		s.live = true
		return packHandle(idx, s.gen)
	}

	t.slots = append(t.slots, tableSlot[T]{value: v, gen: 1, live: true})
	// #nosec G115 -- table size is bounded by available memory, well under uint32 max
	idx := uint32(len(t.slots) - 1)
	return packHandle(idx, 1)
}

// Resolve returns the resource for h, or the zero value and false when the
// handle is invalid, stale, or already removed.
func (t *Table[T]) Resolve(h uint64) (T, bool) {
	idx, gen := unpackHandle(h)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(idx) >= len(t.slots) {
		var zero T
		return zero, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Remove frees the slot for h and returns its resource. The boolean is true
// when the resource was released immediately and the caller must destroy it;
// it is false when the slot is pinned (release happens on the last Unpin) or
// the handle did not resolve.
func (t *Table[T]) Remove(h uint64) (T, bool) {
	idx, gen := unpackHandle(h)

	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	if int(idx) >= len(t.slots) {
		return zero, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return zero, false
	}

	if s.pins > 0 {
		s.zombie = true
		return zero, false
	}

	v := s.value
	t.freeSlot(idx)
	return v, true
}

// Pin marks the resource for h as referenced by in-flight work.
// It reports whether the handle resolved. Each successful Pin must be
// matched by exactly one Unpin.
func (t *Table[T]) Pin(h uint64) bool {
	idx, gen := unpackHandle(h)

	t.mu.Lock()
	defer t.mu.Unlock()

	if int(idx) >= len(t.slots) {
		return false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return false
	}
	s.pins++
	return true
}

// Unpin drops one pin from the resource for h. If the slot was removed
// while pinned and this was the last pin, Unpin frees the slot and returns
// the resource with true: the caller must destroy the native resource.
func (t *Table[T]) Unpin(h uint64) (T, bool) {
	idx, gen := unpackHandle(h)

	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	if int(idx) >= len(t.slots) {
		return zero, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen || s.pins == 0 {
		return zero, false
	}

	s.pins--
	if s.pins == 0 && s.zombie {
		v := s.value
		t.freeSlot(idx)
		return v, true
	}
	return zero, false
}

// Len returns the number of live resources.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.slots) - len(t.free)
}

// freeSlot clears a slot and invalidates outstanding handles to it.
// Caller must hold t.mu.
func (t *Table[T]) freeSlot(idx uint32) {
	s := &t.slots[idx]
	var zero T
	s.value = zero
	s.live = false
	s.zombie = false
	s.gen++
	t.free = append(t.free, idx)
}

// Pinner is implemented by driver contexts whose resource tables support
// completion pinning. The submission layer pins every resource referenced
// by submitted work and unpins it once the work is known complete.
type Pinner interface {
	// PinBuffer keeps the buffer behind h alive until the matching unpin.
	// It reports whether the handle resolved.
	PinBuffer(h BufferHandle) bool

	// UnpinBuffer releases one pin taken by PinBuffer.
	UnpinBuffer(h BufferHandle)

	// PinTexture keeps the texture behind h alive until the matching unpin.
	// It reports whether the handle resolved.
	PinTexture(h TextureHandle) bool

	// UnpinTexture releases one pin taken by PinTexture.
	UnpinTexture(h TextureHandle)
}
