// Package cache provides the TTL key-value stores backing the read-through
// fetch gateway. Any backend satisfying Store works; unavailability must
// degrade to a miss, never block or fail a fetch.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/frontend-hunter/opp-comb/app/listing"
)

// schemaVersion is baked into every key so a canonical Item shape change
// invalidates all previously cached entries without a manual purge.
const schemaVersion = "v2"

// Store is the gateway's view of a cache backend.
type Store interface {
	// Get returns the cached items and whether the key was present and live.
	Get(ctx context.Context, key string) ([]listing.Item, bool, error)
	Set(ctx context.Context, key string, items []listing.Item, ttl time.Duration) error
	Close() error
}

// Key builds the deterministic cache key for one source on one fetch path.
func Key(sourceName, path string) string {
	return fmt.Sprintf("opportunity:%s:%s:%s", sourceName, schemaVersion, path)
}
