package record

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gfx/driver"
)

// Factory is a function that creates a Recorder for a driver context.
// Factories are registered via Register() and called by NewRecorder().
// The context may be ignored by strategies that buffer in software.
type Factory func(ctx driver.Context) (Recorder, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	strategies = make(map[string]Factory)
)

// Built-in strategies. "buffered" accumulates in software and ignores the
// context; "deferred" requires a driver.DeferredContext.
func init() {
	Register("buffered", func(driver.Context) (Recorder, error) {
		return NewBuffered(), nil
	})
	Register("deferred", func(ctx driver.Context) (Recorder, error) {
		dc, ok := ctx.(driver.DeferredContext)
		if !ok {
			return nil, ErrNotDeferred
		}
		return NewDeferred(dc), nil
	})
}

// Register registers a recorder strategy with the given name, following the
// database/sql driver pattern. Driver packages may register strategies of
// their own in init():
//
//	func init() {
//	    record.Register("mydriver", func(ctx driver.Context) (record.Recorder, error) {
//	        ...
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken, so
// duplicate registrations are caught during program initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("record: Register factory is nil")
	}
	if _, dup := strategies[name]; dup {
		panic("record: Register called twice for " + name)
	}
	strategies[name] = factory
}

// Unregister removes a strategy from the registry.
// This is primarily useful for testing to clean up between tests.
// If the strategy is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(strategies, name)
}

// NewRecorder creates a recorder by strategy name for the given context.
// Returns an error if the strategy is not registered or the context does
// not satisfy the strategy's requirements.
func NewRecorder(name string, ctx driver.Context) (Recorder, error) {
	registryMu.RLock()
	factory, ok := strategies[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("record: unknown strategy %q (forgotten import?)", name)
	}
	return factory(ctx)
}

// Strategies returns a sorted list of registered strategy names.
func Strategies() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a strategy with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := strategies[name]
	return ok
}
