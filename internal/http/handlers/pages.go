package handlers

import (
	"net/http"

	"pokedex/internal/pagination"
	"pokedex/internal/services/catalog"
	"pokedex/internal/view"

	"github.com/rs/zerolog/log"
)

// ListPage renders the paginated listing for ?offset=<page>.
func ListPage(svc *catalog.Service, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.ParsePage(r.URL.Query().Get("offset"))

		res := svc.List(r.Context(), page, queryOptions(r)...)
		status := http.StatusOK
		if res.Status == catalog.StatusError {
			log.Error().Err(res.Err).Int("page", page).Msg("list query failed")
			status = errorStatus(res.Err)
		}

		data := view.NewListPage(res, page, svc.PageSize())
		if err := renderer.Render(w, status, view.PageList, data); err != nil {
			log.Error().Err(err).Msg("render list page")
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// DetailPage renders a single record for the decoded {id} segment.
func DetailPage(svc *catalog.Service, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		res := svc.Item(r.Context(), id, queryOptions(r)...)
		status := http.StatusOK
		if res.Status == catalog.StatusError {
			log.Error().Err(res.Err).Str("id", id).Msg("item query failed")
			status = errorStatus(res.Err)
		}

		if err := renderer.Render(w, status, view.PageDetail, view.NewDetailPage(res)); err != nil {
			log.Error().Err(err).Msg("render detail page")
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}
