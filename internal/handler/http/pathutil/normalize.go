// Package pathutil normalizes request paths for use as metric labels.
package pathutil

import (
	"strings"
)

const (
	// OtherPath is the label used for every path the service does not route.
	OtherPath = "/other"
	// SwaggerPath labels every request under /swagger/.
	SwaggerPath = "/swagger"
)

// knownPaths lists every route the API serves.
var knownPaths = map[string]struct{}{
	"/generate_brochure": {},
	"/generate_prompt":   {},
	"/fetch_links":       {},
	"/health":            {},
	"/ready":             {},
	"/live":              {},
	"/metrics":           {},
}

// NormalizePath maps a request path to a bounded set of metric labels.
// Known routes pass through, query strings and trailing slashes are
// stripped, and anything else collapses into OtherPath so that scanners
// probing random URLs cannot explode label cardinality.
//
// Examples:
//
//	NormalizePath("/generate_brochure")   // "/generate_brochure"
//	NormalizePath("/fetch_links/")        // "/fetch_links"
//	NormalizePath("/health?verbose=1")    // "/health"
//	NormalizePath("/swagger/index.html")  // "/swagger"
//	NormalizePath("/wp-admin/setup.php")  // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	if path == SwaggerPath || strings.HasPrefix(path, SwaggerPath+"/") {
		return SwaggerPath
	}
	return OtherPath
}

// ExpectedCardinality returns the number of distinct labels NormalizePath can produce.
func ExpectedCardinality() int {
	return len(knownPaths) + 2
}
