package analyzer

import (
	"math"

	"github.com/verte-zerg/genpass/internal/model"
)

// Scoring constants. Changing any of these changes every stored score.
const (
	lengthPointsPerRune     = 1.5
	lengthPointsKnee        = 16
	lengthPointsPerRuneTail = 0.5
	lengthPointsMax         = 30.0

	varietyPointsPerClass = 5.0

	entropyBitsPerPoint = 2.5
	entropyPointsMax    = 50.0

	commonScoreCap = 10

	minLength     = 8
	minClasses    = 3
	minRunLength  = 3
	maxNearCommon = 2
	minNearLength = 4

	// Low variety applies from minLength runes when fewer than half the
	// runes, and fewer than lowVarietyMaxDistinct, are distinct.
	lowVarietyMaxDistinct = 12
)

// Penalty points per weakness.
var penalties = map[model.WeaknessCode]int{
	model.WeaknessEmpty:      100,
	model.WeaknessShort:      15,
	model.WeaknessFewClasses: 10,
	model.WeaknessRepeated:   10,
	model.WeaknessSequential: 10,
	model.WeaknessKeyboard:   10,
	model.WeaknessCommon:     40,
	model.WeaknessNearCommon: 40,
	model.WeaknessSingleKind: 10,
	model.WeaknessCommonTerm: 15,
	model.WeaknessYear:       10,
	model.WeaknessLowVariety: 10,
}

// capped weaknesses limit the score to commonScoreCap.
var capped = map[model.WeaknessCode]bool{
	model.WeaknessCommon:     true,
	model.WeaknessNearCommon: true,
}

// Tier upper bounds (exclusive), weakest first.
var tierBounds = []struct {
	below int
	tier  model.Tier
}{
	{20, model.TierVeryWeak},
	{40, model.TierWeak},
	{60, model.TierFair},
	{80, model.TierStrong},
}

// Score combines length, variety and entropy points minus weakness
// penalties, rounded and clamped to [0, 100].
func Score(length, classes int, bits float64, weaknesses []model.Weakness) int {
	raw := lengthPoints(length) + float64(classes)*varietyPointsPerClass + math.Min(bits/entropyBitsPerPoint, entropyPointsMax)
	limited := false
	for _, w := range weaknesses {
		raw -= float64(w.Penalty)
		limited = limited || capped[w.Code]
	}
	score := clamp(int(math.Round(raw)), 0, 100)
	if limited && score > commonScoreCap {
		score = commonScoreCap
	}
	return score
}

func lengthPoints(length int) float64 {
	if length <= lengthPointsKnee {
		return float64(length) * lengthPointsPerRune
	}
	pts := lengthPointsKnee*lengthPointsPerRune + float64(length-lengthPointsKnee)*lengthPointsPerRuneTail
	return math.Min(pts, lengthPointsMax)
}

// TierFor maps a score to its tier.
func TierFor(score int) model.Tier {
	for _, b := range tierBounds {
		if score < b.below {
			return b.tier
		}
	}
	return model.TierVeryStrong
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
