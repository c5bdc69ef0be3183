package tokens

import "net/http"

// CookieParseFunc parses a raw cookie header string into cookie-name -> value.
// Implementations must not panic and must return an empty (or nil) map for
// input they cannot parse, so extraction degrades to absence instead of failing.
type CookieParseFunc func(rawCookieHeader string) map[string]string

// ParseCookieHeader is the default CookieParseFunc, backed by net/http cookie
// parsing. Unparseable input yields an empty map. The first occurrence wins
// for duplicate cookie names.
func ParseCookieHeader(rawCookieHeader string) map[string]string {
	parsed := make(map[string]string)
	cookies, err := http.ParseCookie(rawCookieHeader)
	if err != nil {
		return parsed
	}
	for _, c := range cookies {
		if _, ok := parsed[c.Name]; !ok {
			parsed[c.Name] = c.Value
		}
	}
	return parsed
}
