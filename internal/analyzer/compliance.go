package analyzer

import (
	"fmt"

	"github.com/verte-zerg/genpass/internal/charset"
	"github.com/verte-zerg/genpass/internal/model"
)

// CheckCompliance checks input against the requirements of a preset: its
// length, per-class minimums, exclusions and entropy threshold.
func CheckCompliance(input string, p model.Preset) model.Compliance {
	runes := []rune(input)
	counts := map[model.CharClass]int{}
	ambiguous, similar := false, false
	for _, r := range runes {
		if class, ok := charset.Classify(r); ok {
			counts[class]++
		}
		ambiguous = ambiguous || charset.IsAmbiguous(r)
		similar = similar || charset.IsSimilar(r)
	}

	cfg := p.Config
	checks := []model.ComplianceCheck{
		{Name: fmt.Sprintf("length >= %d", cfg.Length), Passed: len(runes) >= cfg.Length},
	}
	for _, class := range cfg.EnabledClasses() {
		checks = append(checks, model.ComplianceCheck{
			Name:   fmt.Sprintf("%s >= %d", class, cfg.PerClass()),
			Passed: counts[class] >= cfg.PerClass(),
		})
	}
	if cfg.ExcludeAmbiguous {
		checks = append(checks, model.ComplianceCheck{Name: "no ambiguous characters", Passed: !ambiguous})
	}
	if cfg.ExcludeSimilar {
		checks = append(checks, model.ComplianceCheck{Name: "no similar characters", Passed: !similar})
	}
	bits := EntropyBits(len(runes), Classes(runes))
	checks = append(checks, model.ComplianceCheck{
		Name:   fmt.Sprintf("entropy >= %.0f bits", p.MinEntropy),
		Passed: bits >= p.MinEntropy,
	})

	compliant := true
	for _, c := range checks {
		compliant = compliant && c.Passed
	}
	return model.Compliance{Preset: p.Name, Compliant: compliant, Checks: checks}
}
