package usecase

import (
	"context"

	"github.com/recipelens/backend/internal/domain"
)

// UnavailableExplanation is reported for recipes that came back without an
// ingredient list.
const UnavailableExplanation = "Recipe found but ingredient list unavailable."

// Analyzer runs the full scoring pipeline for one recipe
type Analyzer struct {
	resolver *SubstitutionResolver
}

// NewAnalyzer creates an analyzer backed by the given substitution resolver
func NewAnalyzer(resolver *SubstitutionResolver) *Analyzer {
	if resolver == nil {
		resolver = NewSubstitutionResolver(SubstitutionConfig{}, nil)
	}
	return &Analyzer{resolver: resolver}
}

// Analyze matches recipe ingredients against the user's, scores the match,
// explains the tradeoff and resolves substitutes for up to limit missing
// ingredients.
//
// A recipe with no ingredient data is reported as unavailable instead of
// being run through the explainer, which would call it a perfect match.
func (a *Analyzer) Analyze(
	ctx context.Context,
	recipeIngredients []string,
	userIngredients []string,
	lookup domain.FlavorLookup,
	limit int,
) *domain.Analysis {
	match := ComputeMatch(recipeIngredients, userIngredients)

	if len(match.Matched)+len(match.Missing) == 0 {
		return &domain.Analysis{
			IngredientsAvailable: false,
			Matched:              match.Matched,
			Missing:              match.Missing,
			Substitutions:        []domain.SubstitutionSuggestion{},
			Tier:                 domain.TierUnavailable,
			Explanation:          UnavailableExplanation,
		}
	}

	missingCount := len(match.Missing)

	return &domain.Analysis{
		IngredientsAvailable: true,
		MatchPercent:         match.MatchPercent,
		Confidence:           ComputeConfidence(match.MatchPercent, missingCount),
		Matched:              match.Matched,
		Missing:              match.Missing,
		Substitutions:        a.resolver.Resolve(ctx, match.Missing, lookup, limit),
		Tier:                 ClassifyTradeoff(match.MatchPercent, missingCount),
		Explanation:          ExplainTradeoff(match.MatchPercent, missingCount),
	}
}
