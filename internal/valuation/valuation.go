// Package valuation implements the GriHom valor score heuristic and the
// budget-based recommendation filter. Both functions are pure and
// deterministic for a given input order.
package valuation

import (
	"sort"
	"time"

	"github.com/grihom/grihom-api/internal/models"
)

// premiumLocations is matched exactly against the submitted location string.
// Free-text city entries essentially never hit this bonus; that is the
// documented behavior of the original heuristic, kept as-is.
var premiumLocations = []string{"South Bangalore", "South Mumbai", "Central Delhi"}

// roiRank orders ROI levels for recommendation sorting (High > Medium > Low).
func roiRank(roi string) int {
	switch roi {
	case models.LevelHigh:
		return 3
	case models.LevelMedium:
		return 2
	case models.LevelLow:
		return 1
	}
	return 0
}

// CalculateValorScore computes the 0-100 value-readiness score for a property.
// Base 50, adjusted for age and premium location, plus the impact of every
// implemented improvement (uncapped per item), clamped to [0, 100].
// A zero YearBuilt skips the age adjustment.
func CalculateValorScore(property models.PropertyData, implemented []models.Improvement) int {
	score := 50

	if property.YearBuilt != 0 {
		age := time.Now().Year() - property.YearBuilt
		switch {
		case age < 5:
			score += 10
		case age < 15:
			score += 5
		case age > 30:
			score -= 10
		}
		// The 15-30 band is intentionally neutral.
	}

	for _, loc := range premiumLocations {
		if property.Location == loc {
			score += 15
			break
		}
	}

	for _, imp := range implemented {
		score += imp.Impact
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// GenerateRecommendations filters the candidate list by the property's budget,
// orders it by ROI rank then impact (both descending, stable), and returns at
// most the top 5. The input slice is never mutated.
func GenerateRecommendations(property models.PropertyData, all []models.Improvement) []models.Improvement {
	recommendations := make([]models.Improvement, 0, len(all))

	switch property.Budget {
	case models.LevelLow:
		for _, imp := range all {
			if imp.Cost == models.LevelLow {
				recommendations = append(recommendations, imp)
			}
		}
	case models.LevelMedium:
		for _, imp := range all {
			if imp.Cost != models.LevelHigh {
				recommendations = append(recommendations, imp)
			}
		}
	default:
		recommendations = append(recommendations, all...)
	}

	sort.SliceStable(recommendations, func(a, b int) bool {
		ra, rb := roiRank(recommendations[a].ROI), roiRank(recommendations[b].ROI)
		if ra != rb {
			return ra > rb
		}
		return recommendations[a].Impact > recommendations[b].Impact
	})

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}
