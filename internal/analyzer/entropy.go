package analyzer

import (
	"math"

	"github.com/verte-zerg/genpass/internal/charset"
	"github.com/verte-zerg/genpass/internal/model"
)

// Classes returns the character classes present in runes, in canonical order.
func Classes(runes []rune) []model.CharClass {
	present := map[model.CharClass]bool{}
	for _, r := range runes {
		if class, ok := charset.Classify(r); ok {
			present[class] = true
		}
	}
	out := make([]model.CharClass, 0, len(present))
	for _, class := range model.AllClasses {
		if present[class] {
			out = append(out, class)
		}
	}
	return out
}

// EntropyBits estimates the search-space entropy of a string of length runes
// drawn from the given classes: length * log2(sum of class sizes).
func EntropyBits(length int, classes []model.CharClass) float64 {
	alphabet := 0
	for _, class := range classes {
		alphabet += charset.Size(class)
	}
	if alphabet == 0 || length == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabet))
}
