package converter

import "strings"

// NameFromRoute derives an entity name from a route path. The name is the
// segment just before the first path-parameter placeholder, or the last
// segment when the route has no placeholder:
//
//	/wc/v3/products/(?P<id>[\d]+)  -> products
//	/wc/v3/products                -> products
//
// It reports false only for a route without any segments.
func NameFromRoute(route string) (string, bool) {
	var parts []string
	for _, part := range strings.Split(route, "/") {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", false
	}

	for i, part := range parts {
		if strings.Contains(part, "(") {
			if i > 0 {
				return parts[i-1], true
			}
			break
		}
	}
	return parts[len(parts)-1], true
}
