package usecase

import "strings"

// Normalize canonicalizes an ingredient name for comparison: surrounding
// whitespace is trimmed and the result is lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitIngredients turns comma-separated free text ("chicken, onion,salt")
// into a list of trimmed, non-empty ingredient names.
func SplitIngredients(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
