package analyzer

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/verte-zerg/genpass/internal/model"
)

var messages = map[model.WeaknessCode]string{
	model.WeaknessEmpty:      "Password is empty",
	model.WeaknessShort:      "Shorter than 8 characters",
	model.WeaknessFewClasses: "Uses fewer than 3 character classes",
	model.WeaknessRepeated:   "Repeats the same character 3 or more times in a row",
	model.WeaknessSequential: "Contains a sequential run such as abc or 321",
	model.WeaknessKeyboard:   "Contains a keyboard pattern such as qwerty or asdf",
	model.WeaknessCommon:     "Found in common password lists",
	model.WeaknessNearCommon: "Small variation of a common password",
	model.WeaknessSingleKind: "Uses only digits or only letters",
	model.WeaknessCommonTerm: "Contains a common word such as password, admin, user or login",
	model.WeaknessYear:       "Contains a year such as 1987 or 2024",
	model.WeaknessLowVariety: "Fewer than half of the characters are distinct",
}

func weakness(code model.WeaknessCode) model.Weakness {
	return model.Weakness{Code: code, Message: messages[code], Penalty: penalties[code]}
}

// detectWeaknesses returns the weaknesses of runes in reporting order.
func detectWeaknesses(runes []rune, classes []model.CharClass) []model.Weakness {
	if len(runes) == 0 {
		return []model.Weakness{weakness(model.WeaknessEmpty)}
	}

	lower := strings.ToLower(string(runes))
	folded := fold(lower)
	common := isCommon(folded)
	nearCommon := !common && isNearCommon(folded)
	checks := []struct {
		code model.WeaknessCode
		hit  bool
	}{
		{model.WeaknessShort, len(runes) < minLength},
		{model.WeaknessFewClasses, len(classes) < minClasses},
		{model.WeaknessRepeated, hasRepeatedRun(runes)},
		{model.WeaknessSequential, hasSequentialRun(runes)},
		{model.WeaknessKeyboard, hasKeyboardPattern(lower)},
		{model.WeaknessCommon, common},
		{model.WeaknessNearCommon, nearCommon},
		{model.WeaknessSingleKind, isSingleKind(runes)},
		{model.WeaknessCommonTerm, !common && !nearCommon && hasCommonTerm(folded)},
		{model.WeaknessYear, hasYear(runes)},
		{model.WeaknessLowVariety, hasLowVariety(runes)},
	}

	out := []model.Weakness{}
	for _, c := range checks {
		if c.hit {
			out = append(out, weakness(c.code))
		}
	}
	return out
}

func hasRepeatedRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= minRunLength {
				return true
			}
			continue
		}
		run = 1
	}
	return false
}

// hasSequentialRun finds ascending or descending runs of letters
// (case-insensitive) or digits, like abc, CBA or 789.
func hasSequentialRun(runes []rune) bool {
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	up, down := 1, 1
	for i := 1; i < len(folded); i++ {
		prev, cur := folded[i-1], folded[i]
		if !sameSequenceKind(prev, cur) {
			up, down = 1, 1
			continue
		}
		switch cur - prev {
		case 1:
			up, down = up+1, 1
		case -1:
			up, down = 1, down+1
		default:
			up, down = 1, 1
		}
		if up >= minRunLength || down >= minRunLength {
			return true
		}
	}
	return false
}

func sameSequenceKind(a, b rune) bool {
	isLetter := func(r rune) bool { return r >= 'a' && r <= 'z' }
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	return (isLetter(a) && isLetter(b)) || (isDigit(a) && isDigit(b))
}

func isSingleKind(runes []rune) bool {
	digits, letters := true, true
	for _, r := range runes {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		digits = digits && isDigit
		letters = letters && isLetter
	}
	return digits || letters
}

// fold lowercases s and undoes common character substitutions so that
// p@ssw0rd and password compare equal.
func fold(lower string) string {
	return substitutions.Replace(lower)
}

var substitutions = strings.NewReplacer(
	"@", "a", "4", "a",
	"3", "e",
	"1", "i", "!", "i",
	"0", "o",
	"5", "s", "$", "s",
	"7", "t",
)

func isCommon(folded string) bool {
	_, ok := commonSet()[folded]
	return ok
}

func isNearCommon(folded string) bool {
	n := len([]rune(folded))
	if n < minNearLength {
		return false
	}
	for candidate := range commonSet() {
		diff := len(candidate) - n
		if diff > maxNearCommon || diff < -maxNearCommon {
			continue
		}
		if levenshtein.ComputeDistance(folded, candidate) <= maxNearCommon {
			return true
		}
	}
	return false
}

func hasCommonTerm(folded string) bool {
	for _, term := range commonTerms {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}

// hasYear finds four digits starting with 19 or 20.
func hasYear(runes []rune) bool {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	for i := 0; i+3 < len(runes); i++ {
		if !isDigit(runes[i+2]) || !isDigit(runes[i+3]) {
			continue
		}
		if (runes[i] == '1' && runes[i+1] == '9') || (runes[i] == '2' && runes[i+1] == '0') {
			return true
		}
	}
	return false
}

func hasLowVariety(runes []rune) bool {
	if len(runes) < minLength {
		return false
	}
	distinct := map[rune]struct{}{}
	for _, r := range runes {
		distinct[r] = struct{}{}
	}
	return len(distinct) < lowVarietyMaxDistinct && 2*len(distinct) < len(runes)
}

func hasKeyboardPattern(lower string) bool {
	for _, pattern := range keyboardWindows() {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
