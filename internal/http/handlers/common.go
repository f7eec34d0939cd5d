package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	middlewarex "pokedex/internal/http/middleware"
	"pokedex/internal/provider"
	"pokedex/internal/services/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// queryOptions translates request-scoped flags into catalog options.
func queryOptions(r *http.Request) []catalog.QueryOption {
	var opts []catalog.QueryOption
	if middlewarex.BypassCache(r.Context()) {
		opts = append(opts, catalog.WithBypassCache())
	}
	return opts
}

// pathID returns the decoded {id} route segment. chi hands back the raw
// segment when the request path carries escapes, and the source escapes
// ids itself.
func pathID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}

// errorStatus picks the HTTP status for a failed query.
func errorStatus(err error) int {
	if provider.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode json response")
	}
}
