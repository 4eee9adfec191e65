package queue

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/driver"
)

// Serial executes submissions synchronously, in submission order, on a
// borrowed immediate context. It is the reference Queue implementation.
//
// Because execution happens inside Submit, a fence is signaled before
// Submit returns. Resources referenced by a recorded submission stay pinned
// until Cleanup, matching drivers that consume recordings asynchronously
// after ExecuteCommandList returns.
//
// Serial serializes all access to the wrapped context internally, so it is
// safe to Submit from multiple goroutines. The context must not be used
// outside the queue while submissions are in flight.
type Serial struct {
	mu      sync.Mutex
	ctx     driver.ImmediateContext
	device  gpucontext.Device
	pending []Work
	lists   []driver.CommandList
}

// NewSerial creates a serial queue on ctx. The device is optional: when it
// exposes a polling capability, WaitIdle polls it until the driver reports
// idle.
func NewSerial(ctx driver.ImmediateContext, device gpucontext.Device) (*Serial, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return &Serial{ctx: ctx, device: device}, nil
}

// devicePoller is the polling capability a concrete device behind the
// gpucontext.Device token may expose. The token itself carries no methods.
type devicePoller interface {
	Poll(wait bool)
}

// Submit executes work on the immediate context and signals fence.
// Resources referenced by a recorded submission are pinned until Cleanup
// when the context supports pinning.
func (q *Serial) Submit(work Work, fence *Fence) error {
	if work == nil {
		return ErrNilWork
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if p, ok := q.ctx.(driver.Pinner); ok {
		work.pin(p)
	}
	work.execute(q.ctx)

	q.pending = append(q.pending, work)
	if cw, ok := work.(*compiledWork); ok {
		q.lists = append(q.lists, cw.list)
	}

	if fence != nil {
		fence.signal()
	}
	return nil
}

// WaitIdle blocks until the device has drained all submitted work.
// Devices without a polling capability are treated as always idle, which
// holds for the synchronous execution in Submit.
func (q *Serial) WaitIdle() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if d, ok := q.device.(devicePoller); ok {
		d.Poll(true)
	}
	return nil
}

// Cleanup unpins resources referenced by completed submissions and releases
// retained command lists. Call after WaitIdle.
func (q *Serial) Cleanup() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if p, ok := q.ctx.(driver.Pinner); ok {
		for _, w := range q.pending {
			w.unpin(p)
		}
	}
	for _, l := range q.lists {
		l.Release()
	}
	if n := len(q.pending); n > 0 {
		gfx.Logger().Debug("queue cleanup", "submissions", n, "lists", len(q.lists))
	}
	q.pending = q.pending[:0]
	q.lists = q.lists[:0]
	return nil
}

var _ Queue = (*Serial)(nil)
