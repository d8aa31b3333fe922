package usecase

// Per-ingredient penalties, applied by the ingredient's position in the
// missing list.
const (
	penaltyFirstTier  = 2.0 // 1st and 2nd missing ingredient
	penaltySecondTier = 4.0 // 3rd through 5th
	penaltyThirdTier  = 6.0 // 6th and beyond

	firstTierSize  = 2
	secondTierSize = 5
)

// ComputeConfidence penalizes a match percentage for every ingredient the user
// still has to buy. The penalty per item grows with the length of the
// shopping list. With nothing missing the match percentage is returned as is.
func ComputeConfidence(matchPercent float64, missingCount int) float64 {
	if missingCount <= 0 {
		return clampPercent(round2(matchPercent))
	}

	confidence := round2(matchPercent - missingPenalty(missingCount))
	return clampPercent(confidence)
}

// missingPenalty sums the tiered penalty for missingCount ingredients
func missingPenalty(missingCount int) float64 {
	penalty := 0.0
	for i := 0; i < missingCount; i++ {
		switch {
		case i < firstTierSize:
			penalty += penaltyFirstTier
		case i < secondTierSize:
			penalty += penaltySecondTier
		default:
			penalty += penaltyThirdTier
		}
	}
	return penalty
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
