package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParsePage coerces a navigation parameter into a zero-based page index.
// Numbers and numeric strings are accepted; anything unparsable or negative
// becomes page 0.
func ParsePage(raw any) int {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		// Decimal first so "010" means ten, not an octal literal.
		if n, err := strconv.Atoi(s); err == nil {
			return nonNegative(n)
		}
		raw = s
	}
	page, err := cast.ToIntE(raw)
	if err != nil {
		return 0
	}
	return nonNegative(page)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Offset converts a page index to the item offset sent upstream. Pages past
// the representable range saturate at the last whole page.
func Offset(page, pageSize int) int {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page > math.MaxInt/pageSize {
		return math.MaxInt / pageSize * pageSize
	}
	return page * pageSize
}
