// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the contract between the gfx recording core and a
// native GPU driver.
//
// The central type is [Context]: the set of calls the translation engine in
// package record issues when a command is executed. An [ImmediateContext]
// additionally executes compiled command lists; a [DeferredContext] is the
// driver's own deferred-recording object, finished into a [CommandList].
//
// Resources are addressed through generation-checked handles
// ([BufferHandle], [TextureHandle], [PipelineHandle]). A handle carries no
// ownership; driver implementations own a [Table] that maps handles to live
// native resources and keeps them pinned while submitted work references
// them. A handle that outlives its resource resolves to nothing instead of
// dangling.
package driver
