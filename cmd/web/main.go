package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex/internal/app"
	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/provider/pokeapi"
	"pokedex/internal/services/catalog"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	closer := logging.Setup(cfg.Log)
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init cache
	cache, closeCache := app.OpenCache(ctx, cfg)
	defer closeCache()

	source := pokeapi.New(cfg.Upstream)

	handler, svc, err := app.Handler(cfg, source, cache)
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}

	// Start cache warmer
	warmer := catalog.NewWarmer(svc, cache, cfg.Cache.WarmPages, cfg.Cache.WarmEvery)
	go warmer.Run(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().
			Str("upstream", cfg.Upstream.BaseURL).
			Str("cache", cfg.Cache.Backend).
			Msgf("Pokedex listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
