package app

import (
	"fmt"
	"net/http"
	"time"

	"pokedex/internal/config"
	httpx "pokedex/internal/http"
	"pokedex/internal/provider"
	"pokedex/internal/services/catalog"
	"pokedex/internal/store/repositories"
	"pokedex/internal/view"
)

// Handler wires the catalog, views and router around a source and cache.
func Handler(cfg config.Cfg, source provider.Source, cache repositories.Cache) (http.Handler, *catalog.Service, error) {
	svc := catalog.NewService(source, cache, catalog.Options{
		PageSize:     cfg.UI.PageSize,
		TTL:          cfg.Cache.TTL,
		RenderWait:   cfg.UI.RenderWait,
		FetchTimeout: fetchTimeout(cfg.Upstream),
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, nil, fmt.Errorf("templates: %w", err)
	}
	static, err := view.StaticFileSystem()
	if err != nil {
		return nil, nil, err
	}

	return httpx.NewRouter(httpx.RouterDependencies{
		Config:   cfg,
		Catalog:  svc,
		Renderer: renderer,
		Static:   static,
	}), svc, nil
}

// fetchTimeout bounds a whole fetch, retries included.
func fetchTimeout(u config.UpstreamCfg) time.Duration {
	return u.Timeout * time.Duration(u.MaxRetries+1)
}
