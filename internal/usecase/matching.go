package usecase

import (
	"math"

	"github.com/recipelens/backend/internal/domain"
)

// ComputeMatch compares a recipe's ingredients against the user's.
//
// Both sides are normalized and deduplicated before comparison; names that
// normalize to empty are ignored. Matched and
// Missing keep the order in which each ingredient first appears in the recipe,
// so callers that truncate the missing list get a stable prefix.
// An empty recipe list yields a zero result, not an error.
func ComputeMatch(recipeIngredients, userIngredients []string) *domain.MatchResult {
	have := make(map[string]struct{}, len(userIngredients))
	for _, ing := range userIngredients {
		if name := Normalize(ing); name != "" {
			have[name] = struct{}{}
		}
	}

	result := &domain.MatchResult{
		Matched: []string{},
		Missing: []string{},
	}

	seen := make(map[string]struct{}, len(recipeIngredients))
	for _, ing := range recipeIngredients {
		name := Normalize(ing)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := have[name]; ok {
			result.Matched = append(result.Matched, name)
		} else {
			result.Missing = append(result.Missing, name)
		}
	}

	if len(seen) > 0 {
		result.MatchPercent = round2(100 * float64(len(result.Matched)) / float64(len(seen)))
	}

	return result
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
