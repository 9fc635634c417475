// Package cache stores computed results between polyroots invocations.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//   - [RedisCache]: a shared redis instance, used when several processes
//     (for example multiple API servers) should share results
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer], which hashes the inputs of a computation so equal
// inputs map to equal keys. [ScopedKeyer] prefixes every key, which keeps the
// CLI and the HTTP API in separate namespaces on a shared backend.
//
// Cache errors are never fatal to callers: a failed read is a miss and a
// failed write only loses the saved work.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
