package repositories

import (
	"context"
	"time"
)

// Cache defines the contract for the key-value store behind the catalog.
// A zero ttl means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Purger is implemented by caches that keep expired rows around until swept.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
