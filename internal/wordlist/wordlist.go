// Package wordlist loads passphrase word lists.
package wordlist

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/genpass/internal/model"
)

//go:embed en.txt
var englishRaw string

var english = sync.OnceValue(func() []string {
	words, err := ParseWords(strings.NewReader(englishRaw), FilterForLang("en"))
	if err != nil {
		panic(err)
	}
	return words
})

// English returns the built-in English word list. The slice is shared and must not be modified.
func English() []string {
	return english()
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open word list %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ParseWords(file, keep)
	if err != nil {
		return nil, errors.Wrapf(err, "read word list %s", path)
	}
	return words, nil
}

// ParseWords reads one word per line, lowercasing, filtering and dropping duplicates.
func ParseWords(r io.Reader, keep FilterFunc) ([]string, error) {
	if keep == nil {
		keep = FilterForLang("")
	}
	seen := map[string]struct{}{}
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") || !keep(line) {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.WithHint(model.InvalidConfigf("word list is empty"), "provide a file with one word per line")
	}
	return words, nil
}
