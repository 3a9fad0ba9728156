// internal/app/system/normalize/normalize.go
//
// Package normalize centralizes the trimming and case rules applied to
// request inputs before validation, so handlers and stores agree on
// what a "clean" value looks like.
package normalize

import "strings"

// DisplayName trims surrounding whitespace. Case is preserved.
func DisplayName(s string) string {
	return strings.TrimSpace(s)
}

// PlaceName trims surrounding whitespace. Case is preserved; the store
// folds separately for the case-insensitive unique index.
func PlaceName(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a search/filter query parameter. Case is preserved.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Filter trims and lowercases a filter value, mapping the UI's
// "all" sentinel to the empty string (no filter).
func Filter(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "all" {
		return ""
	}
	return v
}

// UserID trims a user id taken from a path or payload.
func UserID(s string) string {
	return strings.TrimSpace(s)
}
