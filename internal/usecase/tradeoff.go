package usecase

import (
	"fmt"
	"strconv"

	"github.com/recipelens/backend/internal/domain"
)

// Match percentage thresholds for each tradeoff tier, checked top-down
const (
	excellentThreshold = 90.0
	strongThreshold    = 75.0
	moderateThreshold  = 60.0
	lowThreshold       = 40.0
)

// ClassifyTradeoff picks the severity tier for a match. A recipe with nothing
// missing is always a perfect match, whatever the percentage.
func ClassifyTradeoff(matchPercent float64, missingCount int) domain.TradeoffTier {
	switch {
	case missingCount <= 0:
		return domain.TierPerfect
	case matchPercent >= excellentThreshold:
		return domain.TierExcellent
	case matchPercent >= strongThreshold:
		return domain.TierStrong
	case matchPercent >= moderateThreshold:
		return domain.TierModerate
	case matchPercent >= lowThreshold:
		return domain.TierLow
	default:
		return domain.TierVeryLow
	}
}

// ExplainTradeoff renders a one-line verdict on how feasible a recipe is.
// The text always opens with the tier label ("Strong match: ...").
func ExplainTradeoff(matchPercent float64, missingCount int) string {
	pct := formatPercent(matchPercent)
	missing := pluralize(missingCount, "ingredient")

	switch ClassifyTradeoff(matchPercent, missingCount) {
	case domain.TierPerfect:
		return fmt.Sprintf("Perfect match: %s%% ingredient compatibility. No substitutions required.", pct)
	case domain.TierExcellent:
		return fmt.Sprintf("Excellent match: %s%% ingredient compatibility. Only %s missing, an easy swap.", pct, missing)
	case domain.TierStrong:
		return fmt.Sprintf("Strong match: %s%% ingredient compatibility. %s missing; substitutes should keep the dish close to the original.", pct, missing)
	case domain.TierModerate:
		return fmt.Sprintf("Moderate match: %s%% ingredient compatibility. %s missing; expect some change in flavor.", pct, missing)
	case domain.TierLow:
		return fmt.Sprintf("Low match: %s%% ingredient compatibility. %s missing; a shopping trip is likely needed.", pct, missing)
	default:
		return fmt.Sprintf("Very low match: %s%% ingredient compatibility. %s missing; consider a different recipe.", pct, missing)
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
