// Package stats summarises recorded analysis history.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/genpass/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary holds aggregate figures over a set of analyses.
type Summary struct {
	Count      int
	Generated  int
	Entered    int
	AvgScore   float64
	BestScore  int
	WorstScore int
	AvgEntropy float64
	AvgLength  float64
}

// Summarize aggregates records.
func Summarize(records []model.AnalysisRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(records), BestScore: records[0].Score, WorstScore: records[0].Score}
	var scoreSum, entropySum, lengthSum float64
	for _, r := range records {
		switch r.Source {
		case model.SourceGenerated:
			s.Generated++
		case model.SourceEntered:
			s.Entered++
		}
		scoreSum += float64(r.Score)
		entropySum += r.EntropyBits
		lengthSum += float64(r.Length)
		s.BestScore = max(s.BestScore, r.Score)
		s.WorstScore = min(s.WorstScore, r.Score)
	}
	count := float64(len(records))
	s.AvgScore = scoreSum / count
	s.AvgEntropy = entropySum / count
	s.AvgLength = lengthSum / count
	return s
}

// TierCount is the number of analyses that landed in a tier.
type TierCount struct {
	Tier  model.Tier
	Count int
}

// TierDistribution counts records per tier, weakest tier first, including empty tiers.
func TierDistribution(records []model.AnalysisRecord) []TierCount {
	counts := map[model.Tier]int{}
	for _, r := range records {
		counts[r.Tier]++
	}
	out := make([]TierCount, 0, len(model.AllTiers))
	for _, tier := range model.AllTiers {
		out = append(out, TierCount{Tier: tier, Count: counts[tier]})
	}
	return out
}

// Scores extracts the score series in record order.
func Scores(records []model.AnalysisRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Score)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Downsample averages values into at most width contiguous buckets.
// A width of zero or less keeps every value.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values, at most
// width characters wide.
func Sparkline(values []float64, width int) string {
	values = Downsample(values, width)
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
