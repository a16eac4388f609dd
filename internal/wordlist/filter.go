package wordlist

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MinWordLength is the shortest word kept from a custom list.
const MinWordLength = 3

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
// English keeps plain a-z words; other languages keep any word made of letters.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return filterLetters
	}
}

// FilterForList picks the filter for a custom list from its name or path:
// "en" or "en.txt" gets the English filter, "de" or "/x/de.txt" the letter
// filter. Words shorter than MinWordLength are dropped from every list.
func FilterForList(name string) FilterFunc {
	base := filepath.Base(name)
	lang := strings.TrimSuffix(base, filepath.Ext(base))
	return MinLength(MinWordLength, FilterForLang(lang))
}

// MinLength wraps a filter to also drop words shorter than n runes.
func MinLength(n int, keep FilterFunc) FilterFunc {
	return func(word string) bool {
		return len([]rune(word)) >= n && keep(word)
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func filterLetters(word string) bool {
	return word != "" && strings.IndexFunc(word, func(r rune) bool { return !unicode.IsLetter(r) }) < 0
}
