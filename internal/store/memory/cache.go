package memory

import (
	"context"
	"time"

	"pokedex/internal/store/repositories"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a process-local cache. Its contents do not survive a restart.
type Cache struct {
	items *gocache.Cache
}

var (
	_ repositories.Cache  = (*Cache)(nil)
	_ repositories.Purger = (*Cache)(nil)
)

// New returns an empty cache. Expired entries are hidden from Get and
// removed by PurgeExpired; there is no background janitor.
func New() *Cache {
	return &Cache{items: gocache.New(gocache.NoExpiration, 0)}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

// Set stores a copy of value. A ttl <= 0 keeps the entry until deleted.
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

// PurgeExpired drops expired entries and reports how many were removed.
func (c *Cache) PurgeExpired(_ context.Context) (int64, error) {
	before := c.items.ItemCount()
	c.items.DeleteExpired()
	return int64(max(0, before-c.items.ItemCount())), nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
