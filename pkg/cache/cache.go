// Package cache provides result caching for expensive searches.
//
// Enumerating closed loops is exponential in the inventory size, so the
// pipeline memoizes whole search results keyed by a content hash of the
// inventory. The core engines know nothing about caching; only the
// pipeline consults it, and only when the caller opts in.
//
// Three backends implement [Cache]:
//   - [FileCache]: directory of JSON entries for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
