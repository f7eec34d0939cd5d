package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/pagination"
	"pokedex/internal/provider"
	"pokedex/internal/store/repositories"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const defaultFetchTimeout = 30 * time.Second

// Options tune a Service. Zero values fall back to sensible defaults.
type Options struct {
	PageSize     int
	TTL          time.Duration
	RenderWait   time.Duration
	FetchTimeout time.Duration
}

// Service answers list and detail queries from the cache, falling back to
// the upstream source. Identical concurrent queries share a single fetch.
type Service struct {
	source       provider.Source
	cache        repositories.Cache
	pageSize     int
	ttl          time.Duration
	renderWait   time.Duration
	fetchTimeout time.Duration
	group        singleflight.Group
}

// NewService creates a new catalog service
func NewService(source provider.Source, cache repositories.Cache, opts Options) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	return &Service{
		source:       source,
		cache:        cache,
		pageSize:     opts.PageSize,
		ttl:          opts.TTL,
		renderWait:   opts.RenderWait,
		fetchTimeout: opts.FetchTimeout,
	}
}

// PageSize is the number of items per list page.
func (s *Service) PageSize() int { return s.pageSize }

type queryConfig struct {
	bypassCache bool
	wait        time.Duration
}

// QueryOption adjusts a single query.
type QueryOption func(*queryConfig)

// WithBypassCache skips the cache lookup and refetches from the source.
func WithBypassCache() QueryOption {
	return func(c *queryConfig) { c.bypassCache = true }
}

// WithWait overrides the render budget. Zero waits for the fetch to finish.
func WithWait(d time.Duration) QueryOption {
	return func(c *queryConfig) { c.wait = d }
}

func (s *Service) queryConfig(opts []QueryOption) queryConfig {
	qc := queryConfig{wait: s.renderWait}
	for _, o := range opts {
		o(&qc)
	}
	return qc
}

// ListKey is the cache key of a list page.
func ListKey(offset, limit int) string {
	return fmt.Sprintf("list:%d:%d", offset, limit)
}

// ItemKey is the cache key of a detail record.
func ItemKey(id string) string {
	return "item:" + id
}

// List returns the zero-based page of the listing.
func (s *Service) List(ctx context.Context, page int, opts ...QueryOption) Result[*pokemon.ListPage] {
	offset := pagination.Offset(page, s.pageSize)
	limit := s.pageSize
	return runQuery(ctx, s, "list", ListKey(offset, limit), s.queryConfig(opts),
		func(ctx context.Context) (*pokemon.ListPage, error) {
			return s.source.FetchList(ctx, offset, limit)
		})
}

// Item returns the detail record for id.
func (s *Service) Item(ctx context.Context, id string, opts ...QueryOption) Result[*pokemon.Detail] {
	return runQuery(ctx, s, "item", ItemKey(id), s.queryConfig(opts),
		func(ctx context.Context) (*pokemon.Detail, error) {
			return s.source.FetchItem(ctx, id)
		})
}

func runQuery[T any](ctx context.Context, s *Service, op, key string, qc queryConfig, fetch func(context.Context) (T, error)) Result[T] {
	if !qc.bypassCache {
		if v, ok := cached[T](ctx, s.cache, key); ok {
			return Result[T]{Status: StatusSuccess, Data: v, Cached: true}
		}
	}

	ch := s.group.DoChan(key, func() (any, error) {
		// The fetch outlives the request that started it so a slow
		// response still lands in the cache for the next render.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		start := time.Now()
		v, err := fetch(fctx)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("key", key).Dur("duration", time.Since(start)).Msg("catalog: fetched")
		s.store(fctx, key, v)
		return v, nil
	})

	var timeout <-chan time.Time
	if qc.wait > 0 {
		t := time.NewTimer(qc.wait)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case res := <-ch:
		if res.Err != nil {
			return Result[T]{Status: StatusError, Err: &ServiceError{Op: op, Key: key, Err: res.Err}}
		}
		return Result[T]{Status: StatusSuccess, Data: res.Val.(T)}
	case <-timeout:
		log.Debug().Str("key", key).Dur("wait", qc.wait).Msg("catalog: still loading")
		return Result[T]{Status: StatusLoading}
	case <-ctx.Done():
		return Result[T]{Status: StatusError, Err: &ServiceError{Op: op, Key: key, Err: ctx.Err()}}
	}
}

func cached[T any](ctx context.Context, cache repositories.Cache, key string) (T, bool) {
	var zero T
	if cache == nil {
		return zero, false
	}
	b, ok, err := cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog: cache read failed")
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog: dropping undecodable cache entry")
		_ = cache.Delete(ctx, key)
		return zero, false
	}
	return v, true
}

func (s *Service) store(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog: encode for cache failed")
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog: cache write failed")
	}
}
