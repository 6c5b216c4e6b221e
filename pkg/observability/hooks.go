// Package observability lets an embedding program observe pipeline runs.
//
// Libraries emit events through package-level hooks that default to no-ops;
// a program that wants metrics or traces registers its own implementation
// once at startup. framemap itself registers nothing, so the hooks cost a
// mutex read per event.
//
// # Usage
//
//	func main() {
//	    observability.SetPipelineHooks(&promPipelineHooks{})
//	    observability.SetCacheHooks(&promCacheHooks{})
//	    // ... run framemap's pipeline
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from pipeline runs.
type PipelineHooks interface {
	// OnLoadComplete fires after the frames document was read (or failed to).
	OnLoadComplete(ctx context.Context, input string, frames int, duration time.Duration, err error)

	// OnFrameRendered fires once per map page. cached reports a cache hit.
	OnFrameRendered(ctx context.Context, index int, cached bool, duration time.Duration, err error)

	// OnRunComplete fires when a run ends, successfully or not.
	OnRunComplete(ctx context.Context, frames int, duration time.Duration, err error)
}

// CacheHooks receives page cache events.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnFrameRendered(context.Context, int, bool, time.Duration, error)  {}
func (NoopPipelineHooks) OnRunComplete(context.Context, int, time.Duration, error)          {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
)

// SetPipelineHooks registers pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
