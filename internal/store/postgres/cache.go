package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pokedex/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Cache keeps entries in the cache_entries table. Expired rows are hidden
// from Get and removed by PurgeExpired.
type Cache struct {
	db     *pgxpool.Pool
	prefix string
}

var (
	_ repositories.Cache  = (*Cache)(nil)
	_ repositories.Purger = (*Cache)(nil)
)

func NewCache(db *pgxpool.Pool, prefix string) *Cache {
	return &Cache{db: db, prefix: prefix}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.QueryRow(ctx, `SELECT value FROM cache_entries
		WHERE key=$1 AND (expires_at IS NULL OR expires_at > now())`, c.prefix+key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}
	_, err := c.db.Exec(ctx, `INSERT INTO cache_entries(key, value, expires_at, updated_at)
		VALUES($1,$2,$3,now())
		ON CONFLICT (key) DO UPDATE
		SET value=EXCLUDED.value, expires_at=EXCLUDED.expires_at, updated_at=now()`,
		c.prefix+key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.Exec(ctx, `DELETE FROM cache_entries WHERE key=$1`, c.prefix+key); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// PurgeExpired deletes rows past their expiry.
func (c *Cache) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := c.db.Exec(ctx, `DELETE FROM cache_entries WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return tag.RowsAffected(), nil
}
