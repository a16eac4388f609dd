// Package charset defines the character classes used for generation and analysis.
package charset

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/genpass/internal/model"
)

// Class alphabets. The symbol set is fixed at 26 characters.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Ambiguous holds visually confusable characters excluded on request.
const Ambiguous = "0O1lI"

// Similar holds look-alike characters excluded by the stricter presets.
const Similar = "il1Lo0O"

// PassphraseSymbols is the set passphrase symbol segments draw from.
const PassphraseSymbols = "!@#$%^&*()"

// Chars returns the alphabet of a class.
func Chars(c model.CharClass) string {
	switch c {
	case model.ClassLowercase:
		return Lowercase
	case model.ClassUppercase:
		return Uppercase
	case model.ClassDigit:
		return Digits
	case model.ClassSymbol:
		return Symbols
	default:
		return ""
	}
}

// Size returns the alphabet size of a class.
func Size(c model.CharClass) int {
	return len(Chars(c))
}

// Classify reports the class a rune counts toward during analysis.
//
// ASCII letters and digits map to their classes. Any other printable,
// non-space rune counts as a symbol. Whitespace and control runes belong
// to no class.
func Classify(r rune) (model.CharClass, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return model.ClassLowercase, true
	case r >= 'A' && r <= 'Z':
		return model.ClassUppercase, true
	case r >= '0' && r <= '9':
		return model.ClassDigit, true
	case isSpaceOrControl(r):
		return "", false
	default:
		return model.ClassSymbol, true
	}
}

// IsAmbiguous reports whether r is in the ambiguous set.
func IsAmbiguous(r rune) bool {
	return strings.ContainsRune(Ambiguous, r)
}

// IsSimilar reports whether r is in the similar set.
func IsSimilar(r rune) bool {
	return strings.ContainsRune(Similar, r)
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == '\uFEFF'
}
