// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gogpudriver binds the gfx driver contract to gogpu's gpu.Backend,
// which supports both Rust (wgpu-native) and Pure Go implementations. Users
// select the underlying GPU backend by importing the appropriate package:
//
//	import _ "github.com/gogpu/gogpu/gpu/backend/rust"   // Rust backend
//	import _ "github.com/gogpu/gogpu/gpu/backend/native" // Pure Go backend
//
// The driver owns generation-checked resource tables mapping gfx handles to
// gpu.Backend resources, and implements driver.Pinner so the submission
// layer can keep resources alive across queue completion.
//
// # Current Limitations
//
// gpu.Backend focuses on resource and queue operations. Raw draw and
// pipeline-binding calls are not exposed by the Backend interface, so the
// corresponding context operations log a warning and are dropped. Resource
// updates — the data-carrying path — are fully supported. gpu.Backend also
// has no native deferred-context object; Device.NewDeferred returns a
// software-emulated deferred context that batches into a buffered recording
// and compiles it into an executable command list.
package gogpudriver
