package app

import (
	"context"

	"pokedex/internal/config"
	"pokedex/internal/store/memory"
	"pokedex/internal/store/postgres"
	redisstore "pokedex/internal/store/redis"
	"pokedex/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

// OpenCache builds the configured cache backend. The returned func releases
// its connections.
func OpenCache(ctx context.Context, cfg config.Cfg) (repositories.Cache, func()) {
	switch cfg.Cache.Backend {
	case "redis":
		client := redisstore.MustOpen(ctx, cfg.Redis)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache: redis")
		return redisstore.New(client, cfg.Cache.Prefix), func() { _ = client.Close() }
	case "postgres":
		pool := postgres.MustOpen(ctx, cfg.DB.DSN)
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("cache: postgres migrate failed")
		}
		log.Info().Msg("cache: postgres")
		return postgres.NewCache(pool, cfg.Cache.Prefix), pool.Close
	default:
		log.Info().Msg("cache: memory")
		return memory.New(), func() {}
	}
}
