// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfx adapts an abstract GPU command-submission API onto a native
// driver's context object model.
//
// The heart of the module is the command recording core in package record:
// drawing and resource-update operations are captured as typed commands,
// decoupled from the caller's memory and goroutine, and later replayed
// against a native context. Two interchangeable strategies exist:
//
//   - Buffered: commands and payload bytes are accumulated in a private
//     arena and replayed later, possibly on another goroutine.
//   - Deferred: each operation is forwarded immediately to the native
//     driver's own deferred-recording context, which batches internally
//     and is finished into a compiled command list.
//
// Both strategies drive the same translation path, so their observable
// effects on the native context are identical.
//
// Package driver defines the native driver contract consumed by the core:
// context interfaces, generation-checked resource handles, and texture
// subresource addressing. Package queue provides the submission layer, and
// package gogpudriver binds the whole stack to gogpu's gpu.Backend.
//
// This root package holds the device enumeration contracts and the shared
// logger. gfx produces no log output by default; call [SetLogger] to enable
// diagnostics.
package gfx
