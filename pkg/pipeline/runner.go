package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trackloop/trackloop/pkg/cache"
	"github.com/trackloop/trackloop/pkg/errors"
	"github.com/trackloop/trackloop/pkg/observability"
	"github.com/trackloop/trackloop/pkg/report"
	"github.com/trackloop/trackloop/pkg/search"
	"github.com/trackloop/trackloop/pkg/track"
)

// Runner executes searches and diagnoses with caching and logging
// attached. A Runner is safe for sequential reuse; create one per
// concurrent caller.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the runner's cache backend.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Search enumerates every distinct closed layout buildable from supply.
// Results are cached under a content hash of the inventory; a cache hit
// skips the enumeration entirely.
func (r *Runner) Search(ctx context.Context, supply map[track.Kind]int, opts SearchOptions) (*SearchResult, error) {
	inv, err := search.NewInventory(supply)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInventory, err, "build inventory")
	}

	labels := make(map[string]int, len(supply))
	for k, n := range supply {
		labels[string(k)] = n
	}
	key := cache.SearchKey(labels)

	if !opts.Refresh {
		if res, ok := r.cachedSearch(ctx, key); ok {
			r.logger.Debug("search cache hit", "key", key, "layouts", len(res.Layouts))
			res.Stats = Stats{Pieces: inv.Total(), Solutions: len(res.Layouts)}
			return res, nil
		}
	}

	r.logger.Info("searching", "pieces", inv.Total())
	observability.Search().OnSearchStart(ctx, inv.Total())
	start := time.Now()

	var layouts []report.Layout
	search.New(inv).RunFunc(func(l search.Layout) {
		rec := report.Layout{Pieces: track.Labels(l.Kinds)}
		layouts = append(layouts, rec)
		observability.Search().OnSolution(ctx, rec.Pieces)
		if opts.OnLayout != nil {
			opts.OnLayout(rec)
		}
	})

	elapsed := time.Since(start)
	observability.Search().OnSearchComplete(ctx, len(layouts), elapsed, nil)
	r.logger.Info("search finished", "layouts", len(layouts), "elapsed", elapsed.Round(time.Millisecond))

	r.storeSearch(ctx, key, layouts, opts.CacheTTL)

	return &SearchResult{
		Layouts: layouts,
		Stats:   Stats{Pieces: inv.Total(), Solutions: len(layouts), Elapsed: elapsed},
	}, nil
}

// Diagnose lays out a fixed sequence and measures how far it is from
// closing. The sequence must be non-empty and already validated.
func (r *Runner) Diagnose(ctx context.Context, kinds []track.Kind) (report.Diagnosis, error) {
	if len(kinds) == 0 {
		return report.Diagnosis{}, errors.New(errors.ErrCodeInvalidSequence, "sequence is empty")
	}

	path := track.Build(kinds)
	dist, angle := path.Gap()
	closed := path.IsClosedC1()
	observability.Search().OnDiagnose(ctx, len(kinds), closed)

	return report.Diagnosis{
		Sequence: track.Labels(kinds),
		Closed:   closed,
		Distance: dist,
		Angle:    angle,
	}, nil
}

// cachedSearch tries to load a search result from the cache.
func (r *Runner) cachedSearch(ctx context.Context, key string) (*SearchResult, bool) {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, "search")
		return nil, false
	}

	var layouts []report.Layout
	if err := json.Unmarshal(data, &layouts); err != nil {
		// Stale or corrupt entry: fall through to a fresh search.
		r.logger.Warn("cache entry corrupt", "key", key)
		_ = r.cache.Delete(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "search")
	return &SearchResult{Layouts: layouts, CacheHit: true}, true
}

// storeSearch writes a search result to the cache. Failures are logged,
// not returned: the search itself succeeded.
func (r *Runner) storeSearch(ctx context.Context, key string, layouts []report.Layout, ttl time.Duration) {
	data, err := json.Marshal(layouts)
	if err != nil {
		r.logger.Warn("cache encode failed", "err", err)
		return
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		r.logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "search", len(data))
}
