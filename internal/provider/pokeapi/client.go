package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"pokedex/internal/config"
	"pokedex/internal/domain/pokemon"
	"pokedex/internal/provider"
	"pokedex/internal/provider/base"
)

const sourceName = "pokeapi"

// Client reads the public Pokémon REST API.
type Client struct {
	http *base.HTTPClient
}

var _ provider.Source = (*Client)(nil)

func New(cfg config.UpstreamCfg) *Client {
	hc := base.NewHTTPClient(sourceName, cfg.Timeout)
	hc.SetBaseURL(cfg.BaseURL)
	hc.SetRetry(cfg.MaxRetries, 0)
	return &Client{http: hc}
}

// NewWithHTTPClient is used when the caller needs to tune the transport, e.g. in tests.
func NewWithHTTPClient(hc *base.HTTPClient) *Client {
	return &Client{http: hc}
}

type listResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type detailResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Sprites        struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
}

// FetchList returns limit entries starting at offset.
func (c *Client) FetchList(ctx context.Context, offset, limit int) (*pokemon.ListPage, error) {
	q := url.Values{}
	q.Set("offset", fmt.Sprint(offset))
	q.Set("limit", fmt.Sprint(limit))

	var in listResponse
	if err := c.getJSON(ctx, "/pokemon?"+q.Encode(), &in); err != nil {
		return nil, err
	}

	page := &pokemon.ListPage{
		Count:   in.Count,
		Results: make([]pokemon.ListItem, 0, len(in.Results)),
	}
	if in.Next != nil {
		page.Next = *in.Next
	}
	if in.Previous != nil {
		page.Previous = *in.Previous
	}
	for _, r := range in.Results {
		page.Results = append(page.Results, pokemon.ListItem{Name: r.Name, URL: r.URL})
	}
	return page, nil
}

// FetchItem returns the detail record for id, which may be a number or a name.
func (c *Client) FetchItem(ctx context.Context, id string) (*pokemon.Detail, error) {
	if id == "" {
		return nil, fmt.Errorf("fetch pokemon: %w", provider.ErrNotFound)
	}

	var in detailResponse
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(id), &in); err != nil {
		return nil, err
	}

	sort.SliceStable(in.Types, func(i, j int) bool { return in.Types[i].Slot < in.Types[j].Slot })

	d := &pokemon.Detail{
		ID:             in.ID,
		Name:           in.Name,
		Height:         in.Height,
		Weight:         in.Weight,
		BaseExperience: in.BaseExperience,
		Sprites:        pokemon.Sprites{FrontDefault: in.Sprites.FrontDefault},
		Types:          make([]string, 0, len(in.Types)),
		Stats:          make([]pokemon.Stat, 0, len(in.Stats)),
	}
	for _, t := range in.Types {
		d.Types = append(d.Types, t.Type.Name)
	}
	for _, s := range in.Stats {
		d.Stats = append(d.Stats, pokemon.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	return d, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.http.Get(ctx, endpoint, nil)
	if err != nil {
		if se, ok := base.AsStatusError(err); ok {
			return &provider.ProviderError{
				Code:       provider.ErrCodeUnavailable,
				Message:    "upstream unavailable",
				StatusCode: se.StatusCode,
				Err:        err,
			}
		}
		return &provider.ProviderError{Code: provider.ErrCodeUpstream, Message: "upstream request failed", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &provider.ProviderError{
			Code:       provider.ErrCodeNotFound,
			Message:    "upstream resource not found",
			StatusCode: resp.StatusCode,
			Err:        provider.ErrNotFound,
		}
	case !resp.IsSuccess():
		return &provider.ProviderError{
			Code:       provider.ErrCodeBadRequest,
			Message:    "upstream rejected request",
			StatusCode: resp.StatusCode,
		}
	}

	if err := resp.DecodeJSON(out); err != nil {
		return &provider.ProviderError{Code: provider.ErrCodeDecode, Message: "invalid upstream payload", Err: err}
	}
	return nil
}
