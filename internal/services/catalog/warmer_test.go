package catalog

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmOnceRefreshesConfiguredPages(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource(100)
	svc, cache := newTestService(src, Options{PageSize: 20})

	w := NewWarmer(svc, cache, 3, time.Minute)
	require.NoError(t, w.WarmOnce(ctx))

	offsets := append([]int(nil), src.listCalls...)
	sort.Ints(offsets)
	assert.Equal(t, []int{0, 20, 40}, offsets)

	for _, off := range offsets {
		_, ok, _ := cache.Get(ctx, ListKey(off, 20))
		assert.True(t, ok)
	}

	require.NoError(t, w.WarmOnce(ctx))
	assert.Equal(t, 6, src.listCount(), "warming always bypasses the cache")
}

func TestWarmOnceReportsFailures(t *testing.T) {
	src := newFakeSource(100)
	src.err = errUpstreamDown
	svc, cache := newTestService(src, Options{})

	w := NewWarmer(svc, cache, 2, time.Minute)
	assert.Error(t, w.WarmOnce(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	src := newFakeSource(100)
	svc, cache := newTestService(src, Options{})
	w := NewWarmer(svc, cache, 1, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return src.listCount() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop")
	}
}

func TestRunDisabledReturnsImmediately(t *testing.T) {
	src := newFakeSource(100)
	svc, cache := newTestService(src, Options{})

	NewWarmer(svc, cache, 0, time.Minute).Run(context.Background())
	assert.Equal(t, 0, src.listCount())
}
