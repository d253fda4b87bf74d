package fetch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/frontend-hunter/opp-comb/app/source"
)

// Warmer keeps the cache populated by re-running the full fetch on an
// interval, so request-time traffic mostly lands on warm entries.
type Warmer struct {
	service  *Service
	catalog  *source.Catalog
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewWarmer(service *Service, catalog *source.Catalog, interval time.Duration) *Warmer {
	ctx, cancel := context.WithCancel(context.Background())

	return &Warmer{
		service:  service,
		catalog:  catalog,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *Warmer) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.warm()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.warm()
			}
		}
	}()
}

func (w *Warmer) Stop() {
	w.cancel()
	w.wg.Wait()
}

func (w *Warmer) warm() {
	sources := w.catalog.All()
	if len(sources) == 0 {
		slog.Debug("No sources configured, skipping warm cycle")
		return
	}

	started := time.Now()
	items := w.service.FetchAll(w.ctx, sources)
	slog.Info("Cache warm cycle complete",
		"sources", len(sources),
		"items", len(items),
		"duration", time.Since(started).Round(time.Millisecond).String())
}
