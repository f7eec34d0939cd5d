package pagination

// DefaultPageSize is the number of list items shown per page.
const DefaultPageSize = 20

// halfWidth is how many page links are shown on each side of the current page.
const halfWidth = 2

// Window describes which page controls to show around the current page.
// PreviousPage and NextPage are only meaningful when the matching Has flag is set;
// they are always serialized so page 0 is distinguishable from absent.
type Window struct {
	TotalPages   int   `json:"total_pages"`
	VisiblePages []int `json:"visible_pages"`
	HasPrevious  bool  `json:"has_previous"`
	HasNext      bool  `json:"has_next"`
	PreviousPage int   `json:"previous_page"`
	NextPage     int   `json:"next_page"`
}

// TotalPages returns ceil(totalCount / pageSize) without floating point.
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalCount <= 0 {
		return 0
	}
	pages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		pages++
	}
	return pages
}

// ComputeWindow returns the visible page range centered on currentPage and
// clipped to [0, totalPages-1]. It accepts any integers and never panics:
// a current page outside the valid range simply yields an empty window.
func ComputeWindow(totalCount, pageSize, currentPage int) Window {
	w := Window{
		TotalPages:   TotalPages(totalCount, pageSize),
		VisiblePages: []int{},
	}
	if w.TotalPages == 0 {
		return w
	}

	last := w.TotalPages - 1

	if currentPage > 0 {
		w.HasPrevious = true
		w.PreviousPage = currentPage - 1
	}
	if currentPage < last {
		w.HasNext = true
		w.NextPage = currentPage + 1
	}

	// Comparisons are arranged so nothing overflows at the integer limits.
	if currentPage < -halfWidth || currentPage-halfWidth > last {
		return w
	}

	start := max(0, currentPage-halfWidth)
	end := last
	if currentPage <= last-halfWidth {
		end = currentPage + halfWidth
	}
	for p := start; p <= end; p++ {
		w.VisiblePages = append(w.VisiblePages, p)
	}
	return w
}
