package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/provider"
)

// fakeSource is an in-memory provider.Source.
type fakeSource struct {
	mu        sync.Mutex
	total     int
	listCalls []int
	itemCalls []string
	entered   chan struct{}
	release   chan struct{}
	err       error
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{total: total}
}

// block makes every fetch wait for release to be closed.
func (f *fakeSource) block() {
	f.entered = make(chan struct{}, 64)
	f.release = make(chan struct{})
}

func (f *fakeSource) wait(ctx context.Context) error {
	if f.release == nil {
		return nil
	}
	f.entered <- struct{}{}
	select {
	case <-f.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeSource) FetchList(ctx context.Context, offset, limit int) (*pokemon.ListPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, offset)
	failWith := f.err
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if failWith != nil {
		return nil, failWith
	}

	page := &pokemon.ListPage{Count: f.total}
	for i := offset; i < offset+limit && i < f.total; i++ {
		page.Results = append(page.Results, pokemon.ListItem{
			Name: fmt.Sprintf("mon-%d", i+1),
			URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i+1),
		})
	}
	return page, nil
}

func (f *fakeSource) FetchItem(ctx context.Context, id string) (*pokemon.Detail, error) {
	f.mu.Lock()
	f.itemCalls = append(f.itemCalls, id)
	failWith := f.err
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if failWith != nil {
		return nil, failWith
	}
	if id == "0" {
		return nil, &provider.ProviderError{Code: provider.ErrCodeNotFound, Message: "not found", Err: provider.ErrNotFound}
	}
	return &pokemon.Detail{Name: "mon-" + id, Height: 4, Weight: 60, Types: []string{"electric"}}, nil
}

func (f *fakeSource) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeSource) itemCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.itemCalls)
}

// brokenCache fails every operation.
type brokenCache struct{}

var (
	errCacheDown    = errors.New("cache down")
	errUpstreamDown = errors.New("upstream down")
)

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errCacheDown
}
func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errCacheDown
}
func (brokenCache) Delete(context.Context, string) error { return errCacheDown }
