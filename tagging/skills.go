package tagging

import "strings"

// ExtractSkills scans text against every registry entry in order and
// returns the canonical labels found, deduplicated in discovery order.
// Empty or all-whitespace input yields an empty result.
func (r *Registry) ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lowered := strings.ToLower(text)

	seen := make(map[string]bool, len(r.entries))
	found := make([]string, 0, 8)
	for _, entry := range r.entries {
		if seen[entry.Label] {
			continue
		}
		if entry.Matches(lowered) {
			seen[entry.Label] = true
			found = append(found, entry.Label)
		}
	}
	return found
}
