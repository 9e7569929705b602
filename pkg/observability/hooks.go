// Package observability provides hooks for instrumenting searches and
// cache operations.
//
// Consumers register hook implementations at startup; library code emits
// events through the global registry. The defaults are no-ops, so the
// core stays free of hard dependencies on any metrics backend while still
// letting a deployment attach Prometheus, OpenTelemetry, or plain logging.
//
// # Usage
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    // ... run application
//	}
//
// Emitting events:
//
//	observability.Search().OnSearchStart(ctx, total)
//	// ... enumerate ...
//	observability.Search().OnSearchComplete(ctx, len(layouts), elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SearchHooks receives events from layout searches and diagnoses.
type SearchHooks interface {
	// OnSearchStart records the start of an enumeration over an inventory
	// of pieceCount pieces.
	OnSearchStart(ctx context.Context, pieceCount int)

	// OnSolution records one discovered closed layout.
	OnSolution(ctx context.Context, labels []string)

	// OnSearchComplete records the end of an enumeration.
	OnSearchComplete(ctx context.Context, solutions int, duration time.Duration, err error)

	// OnDiagnose records one sequence diagnosis.
	OnDiagnose(ctx context.Context, pieceCount int, closed bool)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, int)                            {}
func (NoopSearchHooks) OnSolution(context.Context, []string)                          {}
func (NoopSearchHooks) OnSearchComplete(context.Context, int, time.Duration, error)   {}
func (NoopSearchHooks) OnDiagnose(context.Context, int, bool)                         {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// Call once at application startup before any searches run.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
