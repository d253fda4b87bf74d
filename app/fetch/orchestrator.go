package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// result is the per-source outcome kept observable inside the package:
// failures carry their reason here and only collapse to "zero items" at the
// orchestrator's outward boundary.
type result struct {
	source source.Source
	items  []listing.Item
	err    error
}

// Orchestrator fans a source list out in fixed-size groups, every member
// and every group concurrent, and concatenates whatever succeeds. No
// source's failure, timeout or malformed payload ever reaches the caller;
// the worst outcome is an empty slice.
type Orchestrator struct {
	fetcher   *Fetcher
	groupSize int
}

func NewOrchestrator(fetcher *Fetcher, groupSize int) *Orchestrator {
	if groupSize < 1 {
		groupSize = 1
	}
	return &Orchestrator{
		fetcher:   fetcher,
		groupSize: groupSize,
	}
}

// Run fetches all sources. The aggregate order carries no relation to the
// input order; callers sort after classification.
func (o *Orchestrator) Run(ctx context.Context, sources []source.Source) []listing.Item {
	if len(sources) == 0 {
		return nil
	}

	results := make(chan result, len(sources))
	var wg sync.WaitGroup

	for _, group := range partition(sources, o.groupSize) {
		wg.Add(1)
		go func(group []source.Source) {
			defer wg.Done()

			var inner sync.WaitGroup
			for _, src := range group {
				inner.Add(1)
				go func(src source.Source) {
					defer inner.Done()
					results <- o.fetchOne(ctx, src)
				}(src)
			}
			inner.Wait()
		}(group)
	}

	wg.Wait()
	close(results)

	var items []listing.Item
	failed := 0
	for res := range results {
		if res.err != nil {
			failed++
			slog.Warn("Source fetch failed", "source", res.source.Name, "error", res.err)
			continue
		}
		items = append(items, res.items...)
	}

	slog.Debug("Batch fetch complete",
		"sources", len(sources),
		"failed", failed,
		"items", len(items))

	return items
}

// fetchOne isolates a single source fetch, converting even a panic in an
// adapter into a captured failure so siblings keep running.
func (o *Orchestrator) fetchOne(ctx context.Context, src source.Source) (res result) {
	defer func() {
		if r := recover(); r != nil {
			res = result{source: src, err: fmt.Errorf("adapter panic: %v", r)}
		}
	}()

	items, err := o.fetcher.Fetch(ctx, src)
	return result{source: src, items: items, err: err}
}

func partition(sources []source.Source, size int) [][]source.Source {
	var groups [][]source.Source
	for start := 0; start < len(sources); start += size {
		end := start + size
		if end > len(sources) {
			end = len(sources)
		}
		groups = append(groups, sources[start:end])
	}
	return groups
}
