package stats

import (
	"testing"

	"github.com/verte-zerg/genpass/internal/model"
)

func TestTopWeaknesses(t *testing.T) {
	counts := []model.WeaknessCount{
		{Code: model.WeaknessShort, Count: 3},
		{Code: model.WeaknessCommon, Count: 4},
		{Code: model.WeaknessRepeated, Count: 4},
	}
	top := TopWeaknesses(counts, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 weaknesses, got %d", len(top))
	}
	if top[0].Code != model.WeaknessCommon || top[1].Code != model.WeaknessRepeated {
		t.Fatalf("unexpected order: %v", top)
	}
	if got := TopWeaknesses(counts, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestWeakestClasses(t *testing.T) {
	records := []model.AnalysisRecord{
		{Classes: []model.CharClass{model.ClassLowercase, model.ClassDigit}},
		{Classes: []model.CharClass{model.ClassLowercase, model.ClassUppercase}},
	}
	got := WeakestClasses(records)
	if len(got) != 4 {
		t.Fatalf("expected 4 classes, got %d", len(got))
	}
	if got[0].Class != model.ClassSymbol || got[0].Share != 0 {
		t.Fatalf("expected symbol to be rarest, got %+v", got[0])
	}
	if last := got[3]; last.Class != model.ClassLowercase || last.Share != 1 {
		t.Fatalf("expected lowercase to be most used, got %+v", last)
	}
}
