package stats

import (
	"math"
	"testing"

	"github.com/verte-zerg/genpass/internal/model"
)

func TestSummarize(t *testing.T) {
	records := []model.AnalysisRecord{
		{Source: model.SourceGenerated, Score: 90, EntropyBits: 100, Length: 16},
		{Source: model.SourceEntered, Score: 10, EntropyBits: 20, Length: 6},
		{Source: model.SourceEntered, Score: 50, EntropyBits: 60, Length: 11},
	}
	s := Summarize(records)
	if s.Count != 3 || s.Generated != 1 || s.Entered != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.BestScore != 90 || s.WorstScore != 10 {
		t.Fatalf("unexpected best/worst: %+v", s)
	}
	if math.Abs(s.AvgScore-50) > 1e-9 || math.Abs(s.AvgEntropy-60) > 1e-9 || math.Abs(s.AvgLength-11) > 1e-9 {
		t.Fatalf("unexpected averages: %+v", s)
	}
	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestTierDistribution(t *testing.T) {
	records := []model.AnalysisRecord{{Tier: model.TierWeak}, {Tier: model.TierWeak}, {Tier: model.TierVeryStrong}}
	dist := TierDistribution(records)
	if len(dist) != len(model.AllTiers) {
		t.Fatalf("expected every tier, got %d", len(dist))
	}
	if dist[1].Tier != model.TierWeak || dist[1].Count != 2 {
		t.Fatalf("unexpected weak bucket: %+v", dist[1])
	}
	if dist[4].Count != 1 || dist[0].Count != 0 {
		t.Fatalf("unexpected distribution: %+v", dist)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if same := MovingAverage([]float64{1, 5}, 1); same[1] != 5 {
		t.Fatalf("expected window 1 to copy values, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 50, 100}, 0); got != " +@" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{3, 3}, 10); got != "++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline(nil, 10); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestSparklineFitsWidth(t *testing.T) {
	values := make([]float64, 5000)
	for i := range values {
		values[i] = float64(i % 100)
	}
	if got := Sparkline(values, 60); len(got) != 60 {
		t.Fatalf("expected 60 characters, got %d", len(got))
	}
	if got := Sparkline(values[:40], 60); len(got) != 40 {
		t.Fatalf("expected one character per value below the width, got %d", len(got))
	}
}

func TestDownsample(t *testing.T) {
	got := Downsample([]float64{0, 2, 4, 6, 8, 10}, 3)
	want := []float64{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if got := Downsample([]float64{1, 2}, 0); len(got) != 2 {
		t.Fatalf("expected values unchanged, got %v", got)
	}
}
