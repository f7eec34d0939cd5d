package middlewarex

import (
	"net/http"
	"strings"
)

// CacheControl marks requests that ask for fresh data, either with a
// "Cache-Control: no-cache" header or a refresh=1 query parameter.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cc := strings.ToLower(r.Header.Get("Cache-Control"))
		if strings.Contains(cc, "no-cache") || r.URL.Query().Get("refresh") == "1" {
			r = r.WithContext(WithBypassCache(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}
