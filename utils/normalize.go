package utils

import "strings"

// NormalizeText trims surrounding whitespace. Applied to short text fields
// at the write boundary, independent of the storage schema.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeTags trims each tag, drops empties and de-duplicates while
// preserving first-occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
