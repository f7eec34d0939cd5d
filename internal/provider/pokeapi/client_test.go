package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pokedex/internal/provider"
	"pokedex/internal/provider/base"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
  "count": 1302,
  "next": "https://pokeapi.co/api/v2/pokemon?offset=22&limit=2",
  "previous": "https://pokeapi.co/api/v2/pokemon?offset=18&limit=2",
  "results": [
    {"name": "spearow", "url": "https://pokeapi.co/api/v2/pokemon/21/"},
    {"name": "fearow", "url": "https://pokeapi.co/api/v2/pokemon/22/"}
  ]
}`

const detailBody = `{
  "id": 1,
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "base_experience": 64,
  "sprites": {"front_default": "https://img.example/1.png", "back_default": null},
  "types": [
    {"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}},
    {"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}}
  ],
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp", "url": "https://pokeapi.co/api/v2/stat/1/"}}
  ]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	hc := base.NewHTTPClient("test", 2*time.Second)
	hc.SetBaseURL(srv.URL)
	hc.SetRetry(2, time.Millisecond)
	return NewWithHTTPClient(hc)
}

func TestFetchList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listBody))
	})

	page, err := c.FetchList(context.Background(), 20, 2)
	require.NoError(t, err)

	assert.Equal(t, 1302, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "spearow", page.Results[0].Name)
	assert.Equal(t, "21", page.Results[0].ID())
	assert.Contains(t, page.Next, "offset=22")
}

func TestFetchItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/1", r.URL.Path)
		_, _ = w.Write([]byte(detailBody))
	})

	d, err := c.FetchItem(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "bulbasaur", d.Name)
	assert.Equal(t, 70, d.HeightCM())
	assert.Equal(t, "6.9", d.WeightKGString())
	assert.Equal(t, []string{"grass", "poison"}, d.Types)
	require.NotNil(t, d.Sprites.FrontDefault)
	assert.Equal(t, "https://img.example/1.png", *d.Sprites.FrontDefault)
	require.Len(t, d.Stats, 1)
	assert.Equal(t, "hp", d.Stats[0].Name)
}

func TestFetchItemNotFound(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	_, err := c.FetchItem(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, provider.IsNotFound(err))
	assert.True(t, errors.Is(err, provider.ErrNotFound))
	assert.Equal(t, int32(1), calls.Load(), "404 must not be retried")
}

func TestFetchItemEmptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.FetchItem(context.Background(), "")
	assert.True(t, provider.IsNotFound(err))
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(listBody))
	})

	page, err := c.FetchList(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1302, page.Count)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchList(context.Background(), 0, 20)
	require.Error(t, err)

	var pe *provider.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, provider.ErrCodeUnavailable, pe.Code)
	assert.Equal(t, http.StatusBadGateway, pe.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
	assert.False(t, provider.IsNotFound(err))
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.FetchList(context.Background(), 0, 20)
	var pe *provider.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, provider.ErrCodeBadRequest, pe.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchInvalidPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": "lots"`))
	})

	_, err := c.FetchList(context.Background(), 0, 20)
	var pe *provider.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, provider.ErrCodeDecode, pe.Code)
}

func TestFetchStopsOnCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchList(ctx, 0, 20)
	assert.Error(t, err)
}
