package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pokedex/internal/config"
	"pokedex/internal/store/repositories"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache stores entries in Redis, so they survive process restarts.
type Cache struct {
	client *goredis.Client
	prefix string
}

var _ repositories.Cache = (*Cache)(nil)

// MustOpen connects and pings Redis, exiting the process on failure.
func MustOpen(ctx context.Context, cfg config.RedisCfg) *goredis.Client {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr).Msg("redis ping fail")
	}
	return client
}

func New(client *goredis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) key(k string) string { return c.prefix + k }

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
