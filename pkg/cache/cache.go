// Package cache provides the key/value store used to remember remote API
// responses between runs.
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several processes or hosts
//   - [MemoryCache]: process-local map, mostly for tests
//   - [NullCache]: never stores anything (caching disabled)
//
// All backends store opaque bytes with a per-entry TTL. Writers do not
// coordinate: when two callers populate the same key the last write wins.
//
// # Keys
//
// Keys are built by a [Keyer] so every backend sees the same layout:
//
//	prefix:api-responses:<sha256 of the request URL>
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A missing or expired
	// entry is a miss (nil, false, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clock reports the current time. Backends that check expiry themselves
// take a Clock so tests can move time forward.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
