// Package cache stores rendered map pages between runs.
//
// Rendering a frame is a pure function of the frame, the fallback bounds,
// the tile layer and the framemap version, so a page can be reused whenever
// all four match. [Keyer] turns those inputs into a key; [Cache] stores the
// bytes. [FileCache] keeps entries on disk for the CLI and [NullCache]
// disables caching.
package cache

import (
	"context"
	"time"
)

// TTLPage is how long a rendered map page stays valid.
const TTLPage = 7 * 24 * time.Hour

// Cache is a byte store keyed by string. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key. hit is false on a miss or expiry.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
