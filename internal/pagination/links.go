package pagination

import (
	"strconv"
	"strings"
)

const (
	previousLabel = "« Prev"
	nextLabel     = "Next »"
)

// Control is a single clickable pagination link.
type Control struct {
	Page   int    `json:"page"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active,omitempty"`
}

// Nav is the full set of pagination controls for one render.
type Nav struct {
	Previous *Control  `json:"previous,omitempty"`
	Pages    []Control `json:"pages"`
	Next     *Control  `json:"next,omitempty"`
}

// Link builds the href for a page index relative to basePath.
func Link(basePath string, page int) string {
	sep := "?"
	if strings.Contains(basePath, "?") {
		sep = "&"
	}
	return basePath + sep + "offset=" + strconv.Itoa(page)
}

// BuildNav turns a computed window into links. Page labels are one-based.
func BuildNav(basePath string, w Window, current int) Nav {
	nav := Nav{Pages: make([]Control, 0, len(w.VisiblePages))}

	if w.HasPrevious {
		nav.Previous = &Control{
			Page:  w.PreviousPage,
			Label: previousLabel,
			Href:  Link(basePath, w.PreviousPage),
		}
	}

	for _, p := range w.VisiblePages {
		nav.Pages = append(nav.Pages, Control{
			Page:   p,
			Label:  strconv.Itoa(p + 1),
			Href:   Link(basePath, p),
			Active: p == current,
		})
	}

	if w.HasNext {
		nav.Next = &Control{
			Page:  w.NextPage,
			Label: nextLabel,
			Href:  Link(basePath, w.NextPage),
		}
	}
	return nav
}

// Empty reports whether there is nothing to render.
func (n Nav) Empty() bool {
	return n.Previous == nil && n.Next == nil && len(n.Pages) == 0
}
