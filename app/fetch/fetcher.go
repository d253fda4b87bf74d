package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/frontend-hunter/opp-comb/app/cache"
	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// Fetcher is the read-through gateway in front of one adapter set. Hits
// return the cached list verbatim; misses invoke the adapter and store only
// non-empty results, so a transient upstream failure is retriable on the
// next request instead of being pinned as empty for a full TTL. A failing
// cache store degrades to a miss, never to a failed fetch.
type Fetcher struct {
	adapter Adapter
	store   cache.Store
	ttl     time.Duration
	path    string
}

func NewFetcher(adapter Adapter, store cache.Store, ttl time.Duration, path string) *Fetcher {
	return &Fetcher{
		adapter: adapter,
		store:   store,
		ttl:     ttl,
		path:    path,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, src source.Source) ([]listing.Item, error) {
	key := cache.Key(src.Name, f.path)

	items, hit, err := f.store.Get(ctx, key)
	if err != nil {
		slog.Warn("Cache read failed, treating as miss", "source", src.Name, "error", err)
	} else if hit {
		slog.Debug("Cache hit", "source", src.Name, "items", len(items))
		return items, nil
	}

	items, err = f.adapter.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := f.store.Set(ctx, key, items, f.ttl); err != nil {
			slog.Warn("Cache write failed", "source", src.Name, "error", err)
		}
	}

	return items, nil
}
