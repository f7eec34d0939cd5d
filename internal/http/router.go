package httpx

import (
	"encoding/json"
	"net/http"

	"pokedex/internal/config"
	"pokedex/internal/http/handlers"
	middlewarex "pokedex/internal/http/middleware"
	"pokedex/internal/services/catalog"
	"pokedex/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config   config.Cfg
	Catalog  *catalog.Service
	Renderer *view.Renderer
	Static   http.FileSystem
}

// NewRouter creates the HTTP router serving the HTML pages and the JSON API
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middlewarex.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middlewarex.CacheControl)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"env":    deps.Config.App.Env,
			"cache":  deps.Config.Cache.Backend,
		})
	})

	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(deps.Static)))
	}

	// HTML pages
	r.Get("/", handlers.ListPage(deps.Catalog, deps.Renderer))
	r.Get("/pokemon/{id}", handlers.DetailPage(deps.Catalog, deps.Renderer))

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pokemon", handlers.ListPokemon(deps.Catalog))
		r.Get("/pokemon/{id}", handlers.GetPokemon(deps.Catalog))
	})

	return r
}
