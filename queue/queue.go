// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package queue accepts finished recorded work and runs it on a device.
//
// The contract is deliberately small: a [Queue] takes either a finished
// buffered recording or a compiled native command list, optionally signals
// a [Fence] when the work has executed, and keeps the resources the work
// references alive until the driver is done with them. [Serial] is the
// reference implementation: it executes synchronously on a borrowed
// immediate context.
package queue

import (
	"errors"
	"sync"

	"github.com/gogpu/gfx/driver"
	"github.com/gogpu/gfx/record"
)

// Package errors for queue.
var (
	// ErrNilWork is returned by Submit when work is nil.
	ErrNilWork = errors.New("queue: nil work")

	// ErrNilContext is returned when a queue is constructed without an
	// immediate context.
	ErrNilContext = errors.New("queue: nil immediate context")
)

// Queue accepts recorded work for execution and completion tracking.
type Queue interface {
	// Submit runs or schedules work. If fence is non-nil it is signaled
	// once the work has executed on the device timeline.
	Submit(work Work, fence *Fence) error

	// WaitIdle blocks until all submitted work has completed.
	WaitIdle() error

	// Cleanup releases completion-tracking state: retained command lists
	// are released and pinned resources are unpinned. Call it after
	// WaitIdle (or at a known-idle point such as end of frame).
	Cleanup() error
}

// Fence is a one-shot completion signal attached to a submission.
type Fence struct {
	once sync.Once
	ch   chan struct{}
}

// NewFence creates an unsignaled fence.
func NewFence() *Fence {
	return &Fence{ch: make(chan struct{})}
}

// Done returns a channel closed when the fence is signaled.
func (f *Fence) Done() <-chan struct{} { return f.ch }

// Signaled reports whether the fence has been signaled.
func (f *Fence) Signaled() bool {
	select {
	case <-f.ch:
		return true
	default:
		return false
	}
}

// Wait blocks until the fence is signaled.
func (f *Fence) Wait() { <-f.ch }

// signal marks the fence complete. Signaling twice is harmless.
func (f *Fence) signal() {
	f.once.Do(func() { close(f.ch) })
}

// Work is one unit of submittable work: a finished buffered recording or a
// compiled native command list. The set is closed; construct values with
// [Recorded] or [Compiled].
type Work interface {
	execute(ctx driver.ImmediateContext)
	pin(p driver.Pinner)
	unpin(p driver.Pinner)
}

// Recorded wraps a finished buffered recording for submission. The
// recording's referenced resources are pinned for the lifetime of the
// submission; the recorder itself must not be reset until the queue has
// executed the work.
func Recorded(rec *record.Buffered) Work {
	return &recordedWork{rec: rec}
}

// Compiled wraps a compiled native command list for submission. The list is
// released by the queue's Cleanup; native command lists track their own
// resource references, so no table pinning is needed.
func Compiled(list driver.CommandList) Work {
	return &compiledWork{list: list}
}

type recordedWork struct {
	rec *record.Buffered
	set record.ResourceSet
}

func (w *recordedWork) execute(ctx driver.ImmediateContext) {
	w.rec.Replay(ctx)
}

func (w *recordedWork) pin(p driver.Pinner) {
	w.set = w.rec.Resources()
	for _, h := range w.set.Buffers {
		p.PinBuffer(h)
	}
	for _, h := range w.set.Textures {
		p.PinTexture(h)
	}
}

func (w *recordedWork) unpin(p driver.Pinner) {
	for _, h := range w.set.Buffers {
		p.UnpinBuffer(h)
	}
	for _, h := range w.set.Textures {
		p.UnpinTexture(h)
	}
	w.set = record.ResourceSet{}
}

type compiledWork struct {
	list driver.CommandList
}

func (w *compiledWork) execute(ctx driver.ImmediateContext) {
	ctx.ExecuteCommandList(w.list)
}

func (w *compiledWork) pin(driver.Pinner)   {}
func (w *compiledWork) unpin(driver.Pinner) {}
