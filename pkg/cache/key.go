package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached GitHub API response.
type Key struct {
	// Path is the request path (e.g. "/users/octocat/repos").
	Path string

	// Query holds the request query parameters.
	Query url.Values
}

// String generates a deterministic cache key string.
// Format: gh:path:query1=val1:query2=val2
//
// Example:
//
//	gh:users/octocat/repos:page=2:per_page=100
func (k Key) String() string {
	parts := []string{"gh"}

	path := strings.Trim(k.Path, "/")
	if path != "" {
		parts = append(parts, path)
	}

	// Query params sorted for determinism
	if len(k.Query) > 0 {
		keys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
