package handlers

import (
	"net/http"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/pagination"
	"pokedex/internal/services/catalog"

	"github.com/rs/zerolog/log"
)

// APIListPath is the JSON listing route; pagination links point back to it.
const APIListPath = "/api/v1/pokemon"

type listItemResp struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	URL  string `json:"url"`
}

type paginationResp struct {
	Window pagination.Window `json:"window"`
	Links  pagination.Nav    `json:"links"`
}

type listResp struct {
	Status     string          `json:"status"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Count      int             `json:"count"`
	Cached     bool            `json:"cached"`
	Items      []listItemResp  `json:"items"`
	Pagination *paginationResp `json:"pagination,omitempty"`
}

type itemResp struct {
	Status  string          `json:"status"`
	Cached  bool            `json:"cached"`
	Pokemon *pokemon.Detail `json:"pokemon"`
}

type statusResp struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ListPokemon handles GET /api/v1/pokemon?offset=<page>
func ListPokemon(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.ParsePage(r.URL.Query().Get("offset"))

		res := svc.List(r.Context(), page, queryOptions(r)...)
		switch res.Status {
		case catalog.StatusLoading:
			writeJSON(w, http.StatusAccepted, statusResp{Status: res.Status.String()})
			return
		case catalog.StatusError:
			log.Error().Err(res.Err).Int("page", page).Msg("list query failed")
			writeJSON(w, errorStatus(res.Err), statusResp{Status: res.Status.String(), Error: "failed to fetch pokemons"})
			return
		}
		if res.Data == nil {
			writeJSON(w, http.StatusBadGateway, statusResp{Status: catalog.StatusError.String(), Error: "failed to fetch pokemons"})
			return
		}

		out := listResp{
			Status:   res.Status.String(),
			Page:     page,
			PageSize: svc.PageSize(),
			Count:    res.Data.Count,
			Cached:   res.Cached,
			Items:    make([]listItemResp, 0, len(res.Data.Results)),
		}
		for _, it := range res.Data.Results {
			out.Items = append(out.Items, listItemResp{Name: it.Name, ID: it.ID(), URL: it.URL})
		}
		if res.Data.Count > 0 {
			win := pagination.ComputeWindow(res.Data.Count, svc.PageSize(), page)
			out.Pagination = &paginationResp{
				Window: win,
				Links:  pagination.BuildNav(APIListPath, win, page),
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GetPokemon handles GET /api/v1/pokemon/{id}
func GetPokemon(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		res := svc.Item(r.Context(), id, queryOptions(r)...)
		switch res.Status {
		case catalog.StatusLoading:
			writeJSON(w, http.StatusAccepted, statusResp{Status: res.Status.String()})
			return
		case catalog.StatusError:
			log.Error().Err(res.Err).Str("id", id).Msg("item query failed")
			writeJSON(w, errorStatus(res.Err), statusResp{Status: res.Status.String(), Error: "failed to fetch pokemon"})
			return
		}

		writeJSON(w, http.StatusOK, itemResp{Status: res.Status.String(), Cached: res.Cached, Pokemon: res.Data})
	}
}
