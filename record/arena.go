package record

// PayloadArena is an append-only byte store for recorded update payloads.
//
// Add copies the caller's bytes synchronously, so the original buffer may be
// freed or mutated the instant Add returns without affecting the recording.
// Bytes behind a PayloadRef are immutable until Reset.
//
// An arena has a single writer: it is owned by one Buffered recorder and is
// never shared.
type PayloadArena struct {
	buf []byte
}

// Add copies data to the end of the arena and returns a reference to it.
func (a *PayloadArena) Add(data []byte) PayloadRef {
	ref := PayloadRef{Offset: len(a.buf), Length: len(data)}
	a.buf = append(a.buf, data...)
	return ref
}

// Get returns the bytes for ref as a view into the arena.
//
// The view is only valid for the duration of the replay step that resolved
// it; holding it across Reset or further Adds is a programming error.
func (a *PayloadArena) Get(ref PayloadRef) []byte {
	return a.buf[ref.Offset : ref.Offset+ref.Length]
}

// Len returns the number of payload bytes currently stored.
func (a *PayloadArena) Len() int {
	return len(a.buf)
}

// Reset sets the logical length to zero while retaining allocated capacity,
// so steady-state recording performs no reallocation.
func (a *PayloadArena) Reset() {
	a.buf = a.buf[:0]
}
