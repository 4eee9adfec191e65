// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package record captures GPU operations as typed commands and executes
// them against a native driver context.
//
// Commands are plain data records. Variable-length payloads (buffer and
// texture update bytes) are never referenced by caller pointer: the buffered
// strategy copies them into a private [PayloadArena] the moment they are
// recorded, so a finished recording is self-contained and can be replayed on
// another goroutine with no access to caller memory.
//
// # Architecture
//
// Two interchangeable strategies implement the [Recorder] capability:
//
//   - [Buffered] accumulates an ordered command sequence plus payload arena
//     for later replay through [Buffered.Replay].
//   - [Deferred] forwards every operation immediately to the driver's own
//     deferred context, which batches internally and is finished into a
//     compiled command list.
//
// Both strategies drive the same translation functions, so the native calls
// they ultimately produce are identical; only the buffering policy differs.
//
// # Example
//
//	// Record on a worker goroutine
//	rec := record.NewBuffered()
//	rec.RecordBufferUpdate(vbo, vertexBytes, 0)
//	rec.Record(record.DrawCommand{VertexCount: 3, InstanceCount: 1})
//
//	// Replay against the immediate context
//	rec.Replay(device.Immediate())
//	rec.Reset() // reuse without reallocation
package record
