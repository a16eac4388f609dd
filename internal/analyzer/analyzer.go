// Package analyzer scores the strength of arbitrary passwords.
package analyzer

import (
	"github.com/verte-zerg/genpass/internal/model"
)

// Analyze returns the strength report for input. It never fails and the
// same input always yields the same report.
func Analyze(input string) model.Report {
	runes := []rune(input)
	classes := Classes(runes)
	bits := EntropyBits(len(runes), classes)

	weaknesses := detectWeaknesses(runes, classes)
	score := Score(len(runes), len(classes), bits, weaknesses)
	report := model.Report{
		Input:       input,
		Length:      len(runes),
		Classes:     classes,
		EntropyBits: bits,
		Score:       score,
		Tier:        TierFor(score),
		Weaknesses:  weaknesses,
		CrackTimes:  CrackTimes(bits),
	}
	report.Recommendations = recommend(report)
	return report
}
