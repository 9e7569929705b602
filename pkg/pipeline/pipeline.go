// Package pipeline provides the shared load → search → report flow used
// by both the CLI and the HTTP API.
//
// Centralizing the flow keeps the two entry points byte-for-byte
// consistent: the same validation, the same result caching, the same
// observability events. The core engines in pkg/track and pkg/search stay
// oblivious to caching and logging; the pipeline is where those ambient
// concerns attach.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	defer runner.Close()
//
//	result, err := runner.Search(ctx, supply, pipeline.SearchOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, l := range result.Layouts {
//	    fmt.Println(l.Text())
//	}
package pipeline

import (
	"time"

	"github.com/trackloop/trackloop/pkg/report"
)

// DefaultCacheTTL is how long cached search results stay valid. The piece
// catalog is compiled in, so entries only go stale across releases; a day
// keeps disk usage bounded without re-searching within a session.
const DefaultCacheTTL = 24 * time.Hour

// SearchOptions configures one inventory search.
type SearchOptions struct {
	// Refresh bypasses the cache read (the result is still stored).
	Refresh bool

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration

	// OnLayout, when set, receives each layout as it is discovered.
	// Not called for cache hits, which arrive all at once.
	OnLayout func(report.Layout)
}

// SearchResult holds the outcome of one inventory search.
type SearchResult struct {
	// Layouts are the distinct closed loops, in discovery order.
	Layouts []report.Layout

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the layouts came from the cache.
	CacheHit bool
}

// Stats contains search execution statistics.
type Stats struct {
	Pieces    int           // total pieces in the inventory
	Solutions int           // distinct closed layouts found
	Elapsed   time.Duration // wall time of the enumeration (zero on cache hit)
}
