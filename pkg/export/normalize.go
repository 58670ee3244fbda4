// Package export normalizes GitHub API records into the two flat CSV
// table shapes and writes them out. Normalization is pure: no I/O, and
// a missing field never errors, it becomes the type-appropriate empty
// value.
package export

import "strings"

// BoolString renders an optional boolean as a tri-state CSV field:
// "true", "false", or "" for absent. Absent collapses to the same
// encoding as any non-boolean input; downstream consumers rely on this
// exact behavior, so it stays even though it erases the
// false-vs-missing distinction for non-boolean sources.
func BoolString(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "true"
	}
	return "false"
}

// CompanyName canonicalizes the free-form company field: trim
// surrounding whitespace, drop at most one leading "@", upper-case.
// Absent or empty input becomes "".
func CompanyName(company *string) string {
	if company == nil {
		return ""
	}
	name := strings.TrimSpace(*company)
	if name == "" {
		return ""
	}
	name = strings.TrimPrefix(name, "@")
	return strings.ToUpper(name)
}

// StringOr renders an optional string, mapping absence to "".
func StringOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
