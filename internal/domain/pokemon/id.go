package pokemon

import "strings"

// ExtractID returns the identifier segment of a canonical resource URL,
// which is the second-to-last "/"-separated segment because canonical URLs
// end with a slash. Strings with fewer than two segments yield "".
func ExtractID(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}
