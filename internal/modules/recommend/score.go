// README: Pure score normalization and blending helpers.
package recommend

import "math"

// NormalizeRatingScore maps a 0-5 review average onto [0,1]. A nil rating
// (no reviews yet) scores the unrated baseline.
func NormalizeRatingScore(rating *float64) float64 {
	if rating == nil {
		return unratedBaseline
	}
	return clamp01(*rating / maxRating)
}

// NormalizeDistanceScore maps road miles onto [0,1]: zero (or negative)
// distance is maximal closeness, anything at or past the cutoff scores zero.
func NormalizeDistanceScore(miles float64) float64 {
	if miles <= 0 {
		return 1.0
	}
	if miles >= maxDistanceMiles {
		return 0.0
	}
	return clamp01(1.0 - miles/maxDistanceMiles)
}

// CalculateScore blends the three normalized components into the final
// recommendation score, rounded to two decimals (half away from zero).
// Each component must already be in [0,1].
func CalculateScore(availability, rating, distance float64) (float64, error) {
	for _, v := range []float64{availability, rating, distance} {
		if v < 0 || v > 1 {
			return 0, ErrScoreOutOfRange
		}
	}
	score := weightAvailability*availability + weightRating*rating + weightDistance*distance
	return round2(score), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round2 rounds half away from zero, matching math.Round semantics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
