package pokemon

import (
	"strconv"
	"strings"
)

// ListItem is a single entry of a list page as returned upstream.
type ListItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID derives the item's identifier from its URL.
func (i ListItem) ID() string {
	return ExtractID(i.URL)
}

// ListPage is one page of the upstream listing.
type ListPage struct {
	Count    int        `json:"count"`
	Next     string     `json:"next,omitempty"`
	Previous string     `json:"previous,omitempty"`
	Results  []ListItem `json:"results"`
}

// Sprites holds image URLs. Only the primary image is kept.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// Stat is one base stat such as "hp" or "speed".
type Stat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// Detail is the record shown on a detail page.
type Detail struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Height         int      `json:"height"` // decimetres
	Weight         int      `json:"weight"` // hectograms
	BaseExperience int      `json:"base_experience"`
	Sprites        Sprites  `json:"sprites"`
	Types          []string `json:"types"`
	Stats          []Stat   `json:"stats"`
}

// HeightCM converts the upstream height to centimetres.
func (d *Detail) HeightCM() int {
	return d.Height * 10
}

// WeightKG converts the upstream weight to kilograms.
func (d *Detail) WeightKG() float64 {
	return float64(d.Weight) / 10
}

// WeightKGString formats WeightKG without trailing zeros.
func (d *Detail) WeightKGString() string {
	return strconv.FormatFloat(d.WeightKG(), 'f', -1, 64)
}

// TypeList joins the type names in slot order.
func (d *Detail) TypeList() string {
	return strings.Join(d.Types, ", ")
}

// PrimaryImage returns the main sprite URL or fallback when there is none.
func (d *Detail) PrimaryImage(fallback string) string {
	if d.Sprites.FrontDefault == nil || *d.Sprites.FrontDefault == "" {
		return fallback
	}
	return *d.Sprites.FrontDefault
}
