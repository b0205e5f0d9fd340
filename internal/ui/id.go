package ui

import "strings"

// HighlightID returns id with its first prefixLen characters styled, so the
// shortest unambiguous prefix stands out.
func (s Styles) HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	return s.IDPrefix.Render(id[:prefixLen]) + id[prefixLen:]
}

// PrefixLength looks up id in a map keyed by lowercased IDs.
func PrefixLength(lengths map[string]int, id string) int {
	if lengths == nil || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}
