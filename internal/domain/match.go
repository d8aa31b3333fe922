package domain

// Sentinel values used when no substitute can be proposed
const (
	NoSubstituteFound = "no substitute found"
	RoleUnknown       = "unknown"
	RoleFlavor        = "flavor component"
)

// ResolvedSubstitutionConfidence is the fixed confidence of a substitute
// returned by the flavor database.
const ResolvedSubstitutionConfidence = 80

// MatchResult is the set comparison of a recipe's ingredients against the
// ingredients a user has on hand. All names are normalized.
type MatchResult struct {
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	MatchPercent float64  `json:"matchPercent"`
}

// SubstitutionSuggestion proposes a replacement for one missing ingredient
type SubstitutionSuggestion struct {
	Original        string `json:"original"`
	Substitute      string `json:"substitute"`
	Role            string `json:"role"`
	ConfidenceScore int    `json:"confidenceScore"`
}

// Resolved reports whether the suggestion carries a real substitute
func (s SubstitutionSuggestion) Resolved() bool {
	return s.ConfidenceScore > 0 && s.Substitute != NoSubstituteFound
}

// TradeoffTier is the severity level of a tradeoff explanation
type TradeoffTier string

// Tradeoff tiers, from best to worst. TierUnavailable marks a recipe
// without ingredient data and is never produced by the explainer itself.
const (
	TierPerfect     TradeoffTier = "perfect"
	TierExcellent   TradeoffTier = "excellent"
	TierStrong      TradeoffTier = "strong"
	TierModerate    TradeoffTier = "moderate"
	TierLow         TradeoffTier = "low"
	TierVeryLow     TradeoffTier = "very_low"
	TierUnavailable TradeoffTier = "unavailable"
)

// Analysis bundles match, confidence, explanation and substitutions for one
// recipe against one user's ingredients.
type Analysis struct {
	IngredientsAvailable bool                     `json:"ingredientsAvailable"`
	MatchPercent         float64                  `json:"matchPercent"`
	Confidence           float64                  `json:"confidence"`
	Matched              []string                 `json:"matched"`
	Missing              []string                 `json:"missing"`
	Substitutions        []SubstitutionSuggestion `json:"substitutions"`
	Tier                 TradeoffTier             `json:"tier"`
	Explanation          string                   `json:"explanation"`
}
