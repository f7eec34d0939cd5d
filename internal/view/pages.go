package view

import (
	"net/url"

	"pokedex/internal/domain/pokemon"
	"pokedex/internal/pagination"
	"pokedex/internal/services/catalog"
)

const (
	ListBasePath = "/"
	NoImagePath  = "/static/no-image.svg"

	LoadingMessage   = "Loading..."
	ListErrorMessage = "Error: Failed to fetch pokemons."
	ItemErrorMessage = "Error: Failed to fetch pokemon."

	// seconds before a loading page reloads itself
	loadingRefresh = 1
)

// DetailHref links to the detail page of a resource id.
func DetailHref(id string) string {
	return "/pokemon/" + url.PathEscape(id)
}

type ListItem struct {
	Name string
	ID   string
	Href string
}

type ListPageData struct {
	Title        string
	Loading      bool
	Refresh      int
	ErrorMessage string
	Items        []ListItem
	Nav          pagination.Nav
	ShowNav      bool
}

// NewListPage maps a list query result to what the list template renders.
func NewListPage(res catalog.Result[*pokemon.ListPage], currentPage, pageSize int) ListPageData {
	data := ListPageData{Title: "Pokemon List"}

	switch res.Status {
	case catalog.StatusLoading, catalog.StatusIdle:
		data.Loading = true
		data.Refresh = loadingRefresh
		return data
	case catalog.StatusError:
		data.ErrorMessage = ListErrorMessage
		return data
	}
	if res.Data == nil {
		data.ErrorMessage = ListErrorMessage
		return data
	}

	data.Items = make([]ListItem, 0, len(res.Data.Results))
	for _, it := range res.Data.Results {
		id := it.ID()
		data.Items = append(data.Items, ListItem{Name: it.Name, ID: id, Href: DetailHref(id)})
	}

	if res.Data.Count > 0 {
		w := pagination.ComputeWindow(res.Data.Count, pageSize, currentPage)
		data.Nav = pagination.BuildNav(ListBasePath, w, currentPage)
		data.ShowNav = !data.Nav.Empty()
	}
	return data
}

type DetailView struct {
	Name           string
	Image          string
	HeightCM       int
	WeightKG       string
	Types          string
	BaseExperience int
	Stats          []pokemon.Stat
}

type DetailPageData struct {
	Title        string
	Loading      bool
	Refresh      int
	ErrorMessage string
	Pokemon      *DetailView
	ReturnHref   string
}

// NewDetailPage maps a detail query result to what the detail template renders.
func NewDetailPage(res catalog.Result[*pokemon.Detail]) DetailPageData {
	data := DetailPageData{Title: "Pokemon", ReturnHref: ListBasePath}

	switch res.Status {
	case catalog.StatusLoading, catalog.StatusIdle:
		data.Loading = true
		data.Refresh = loadingRefresh
		return data
	case catalog.StatusError:
		data.ErrorMessage = ItemErrorMessage
		return data
	}
	if res.Data == nil {
		data.ErrorMessage = ItemErrorMessage
		return data
	}

	d := res.Data
	data.Title = d.Name
	data.Pokemon = &DetailView{
		Name:           d.Name,
		Image:          d.PrimaryImage(NoImagePath),
		HeightCM:       d.HeightCM(),
		WeightKG:       d.WeightKGString(),
		Types:          d.TypeList(),
		BaseExperience: d.BaseExperience,
		Stats:          d.Stats,
	}
	return data
}
