package menu

import (
	"strings"
)

// ============================================================================
// SEARCH — Case-insensitive substring filter over name and items
// ============================================================================
// Single pass, input order preserved, elements returned as given. The query
// is lowered once up front.
// ============================================================================

// Search returns the records whose name, or any string item, contains query
// regardless of case. It returns an empty slice if records is not a sequence
// or query is not a string.
func Search(records any, query any) []any {
	seq, ok := asSequence(records)
	if !ok {
		return []any{}
	}
	q, ok := asString(query)
	if !ok {
		return []any{}
	}

	needle := lower(q)
	matches := make([]any, 0, len(seq))
	for _, t := range seq {
		if matchesThali(t, needle) {
			matches = append(matches, t)
		}
	}
	return matches
}

// matchesThali checks name first, then each string item.
func matchesThali(t any, needle string) bool {
	rawName, _ := field(t, KeyName)
	if name, ok := asString(rawName); ok && strings.Contains(lower(name), needle) {
		return true
	}

	rawItems, _ := field(t, KeyItems)
	items, ok := asSequence(rawItems)
	if !ok {
		return false
	}
	for _, item := range items {
		if s, ok := asString(item); ok && strings.Contains(lower(s), needle) {
			return true
		}
	}
	return false
}
