package analyzer

import "github.com/verte-zerg/genpass/internal/model"

const (
	recommendedLength  = 12
	recommendedEntropy = 50.0
)

var classAdvice = map[model.CharClass]string{
	model.ClassLowercase: "Add lowercase letters",
	model.ClassUppercase: "Add uppercase letters",
	model.ClassDigit:     "Add numeric digits",
	model.ClassSymbol:    "Add special symbols",
}

var weaknessAdvice = map[model.WeaknessCode]string{
	model.WeaknessRepeated:   "Avoid repeating the same character",
	model.WeaknessSequential: "Avoid sequences like abc or 123",
	model.WeaknessKeyboard:   "Avoid keyboard patterns like qwerty",
	model.WeaknessCommon:     "Never use a common password",
	model.WeaknessNearCommon: "Avoid small variations of common passwords",
	model.WeaknessCommonTerm: "Avoid dictionary words like password or admin",
	model.WeaknessYear:       "Avoid years and dates",
	model.WeaknessLowVariety: "Use more distinct characters",
}

const satisfied = "Password meets security requirements"

func recommend(r model.Report) []string {
	var out []string
	if r.Length < recommendedLength {
		out = append(out, "Increase length to at least 12 characters")
	}
	for _, class := range model.AllClasses {
		if !r.HasClass(class) {
			out = append(out, classAdvice[class])
		}
	}
	for _, w := range r.Weaknesses {
		if advice, ok := weaknessAdvice[w.Code]; ok {
			out = append(out, advice)
		}
	}
	if r.EntropyBits < recommendedEntropy {
		out = append(out, "Increase overall complexity")
	}
	if len(out) == 0 {
		return []string{satisfied}
	}
	return out
}
