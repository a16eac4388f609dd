package stats

import (
	"sort"

	"github.com/verte-zerg/genpass/internal/model"
)

// TopWeaknesses returns the n most frequent weaknesses, ties broken by code.
func TopWeaknesses(counts []model.WeaknessCount, n int) []model.WeaknessCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	items := make([]model.WeaknessCount, len(counts))
	copy(items, counts)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Code < items[j].Code
		}
		return items[i].Count > items[j].Count
	})
	return items[:min(n, len(items))]
}

// ClassCoverage is the share of analyses that used a character class.
type ClassCoverage struct {
	Class model.CharClass
	Share float64
}

// WeakestClasses orders classes by how rarely they appeared, rarest first.
func WeakestClasses(records []model.AnalysisRecord) []ClassCoverage {
	if len(records) == 0 {
		return nil
	}
	used := map[model.CharClass]int{}
	for _, r := range records {
		for _, c := range r.Classes {
			used[c]++
		}
	}
	out := make([]ClassCoverage, 0, len(model.AllClasses))
	for _, c := range model.AllClasses {
		out = append(out, ClassCoverage{Class: c, Share: float64(used[c]) / float64(len(records))})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Share < out[j].Share
	})
	return out
}
