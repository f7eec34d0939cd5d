package catalog

import (
	"context"
	"time"

	"pokedex/internal/store/repositories"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Warmer periodically refreshes the first list pages so the common
// entry points render from cache.
type Warmer struct {
	service     *Service
	cache       repositories.Cache
	pages       int
	every       time.Duration
	concurrency int
}

// NewWarmer creates a cache warming worker
func NewWarmer(service *Service, cache repositories.Cache, pages int, every time.Duration) *Warmer {
	if every <= 0 {
		every = 30 * time.Minute
	}
	return &Warmer{
		service:     service,
		cache:       cache,
		pages:       pages,
		every:       every,
		concurrency: 4,
	}
}

// Run warms once immediately and then on every tick until ctx is cancelled.
func (w *Warmer) Run(ctx context.Context) {
	if w.pages <= 0 {
		log.Info().Msg("cache warmer disabled")
		return
	}
	log.Info().
		Int("pages", w.pages).
		Dur("every", w.every).
		Msg("cache warmer started")

	w.tick(ctx)

	ticker := time.NewTicker(w.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("cache warmer stopping")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Warmer) tick(ctx context.Context) {
	start := time.Now()
	if err := w.WarmOnce(ctx); err != nil {
		log.Error().Err(err).Msg("cache warm failed")
	} else {
		log.Info().Int("pages", w.pages).Dur("duration", time.Since(start)).Msg("cache warmed")
	}

	if purger, ok := w.cache.(repositories.Purger); ok {
		n, err := purger.PurgeExpired(ctx)
		if err != nil {
			log.Error().Err(err).Msg("cache purge failed")
			return
		}
		if n > 0 {
			log.Info().Int64("purged", n).Msg("expired cache entries removed")
		}
	}
}

// WarmOnce refetches the configured pages, a few at a time. It returns the
// combined errors of the pages that failed.
func (w *Warmer) WarmOnce(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithMaxGoroutines(w.concurrency)
	for page := 0; page < w.pages; page++ {
		page := page
		p.Go(func(ctx context.Context) error {
			res := w.service.List(ctx, page, WithBypassCache(), WithWait(0))
			if res.Status == StatusError {
				return res.Err
			}
			return nil
		})
	}
	return p.Wait()
}
