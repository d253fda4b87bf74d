package fetch

import (
	"context"
	"sync"

	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// Service routes sources to the baseline or enhanced fetch path and runs
// both orchestrators concurrently. Chinese-language boards tolerate the
// lightweight path; international ones get browser headers and retries.
type Service struct {
	baseline *Orchestrator
	enhanced *Orchestrator
}

func NewService(baseline, enhanced *Orchestrator) *Service {
	return &Service{
		baseline: baseline,
		enhanced: enhanced,
	}
}

// FetchAll fetches every source on its designated path and concatenates
// the results. Like the orchestrators underneath, it never fails.
func (s *Service) FetchAll(ctx context.Context, sources []source.Source) []listing.Item {
	baselineSrcs, enhancedSrcs := source.SplitByPath(sources)

	var (
		wg            sync.WaitGroup
		baselineItems []listing.Item
		enhancedItems []listing.Item
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		baselineItems = s.baseline.Run(ctx, baselineSrcs)
	}()
	go func() {
		defer wg.Done()
		enhancedItems = s.enhanced.Run(ctx, enhancedSrcs)
	}()
	wg.Wait()

	return append(baselineItems, enhancedItems...)
}
