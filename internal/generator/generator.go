// Package generator builds random passwords and passphrases.
//
// Every draw uses a cryptographically secure source. Passwords follow a
// construction policy: one character from each enabled class is placed
// first, the remaining positions are filled uniformly from the whole pool,
// and the result is shuffled with Fisher-Yates so the mandatory characters
// have no predictable position. A length shorter than the number of enabled
// classes is rejected rather than generated without the guarantee.
package generator

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/genpass/internal/charset"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/wordlist"
)

// Generator produces random passwords and passphrases.
type Generator struct {
	rnd   io.Reader
	words []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithWords replaces the built-in passphrase word list.
func WithWords(words []string) Option {
	return func(g *Generator) {
		g.words = words
	}
}

// WithRandom replaces the random source. The reader must be safe for
// concurrent use when batches are generated.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// New returns a Generator reading from crypto/rand with the built-in word list.
func New(opts ...Option) *Generator {
	g := &Generator{rnd: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	if g.words == nil {
		g.words = wordlist.English()
	}
	return g
}

// Words returns the number of words available for passphrases.
func (g *Generator) Words() int {
	return len(g.words)
}

// Password returns a random password for cfg.
func (g *Generator) Password(cfg model.GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	pool, err := charset.BuildPool(cfg)
	if err != nil {
		return "", err
	}
	return g.password(cfg.Length, cfg.PerClass(), pool)
}

// password places perClass random members of every class, fills the rest
// from the whole pool and shuffles.
func (g *Generator) password(length, perClass int, pool charset.Pool) (string, error) {
	classes := pool.Classes()
	if length < len(classes)*perClass {
		return "", model.InvalidConfigf("length %d cannot hold %d characters from each of %d classes", length, perClass, len(classes))
	}

	out := make([]rune, 0, length)
	for _, class := range classes {
		members := pool.ClassRunes(class)
		for i := 0; i < perClass; i++ {
			r, err := g.pick(members)
			if err != nil {
				return "", err
			}
			out = append(out, r)
		}
	}
	all := pool.Runes()
	for len(out) < length {
		r, err := g.pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, r)
	}
	if err := g.shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Passphrase returns a random passphrase for cfg.
func (g *Generator) Passphrase(cfg model.PassphraseConfig) (string, error) {
	if err := g.checkPassphrase(cfg); err != nil {
		return "", err
	}
	return g.passphrase(cfg)
}

func (g *Generator) checkPassphrase(cfg model.PassphraseConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(g.words) == 0 {
		return model.InvalidConfigf("word list is empty")
	}
	return nil
}

func (g *Generator) passphrase(cfg model.PassphraseConfig) (string, error) {
	segments := make([]string, 0, cfg.WordCount+2)
	for i := 0; i < cfg.WordCount; i++ {
		idx, err := g.intn(len(g.words))
		if err != nil {
			return "", err
		}
		word := g.words[idx]
		if cfg.Capitalize {
			word = capitalize(word)
		}
		segments = append(segments, word)
	}
	if cfg.AddNumbers {
		num, err := g.drawString(charset.Digits, 1, 3)
		if err != nil {
			return "", err
		}
		segments = append(segments, num)
	}
	if cfg.AddSymbols {
		sym, err := g.drawString(charset.PassphraseSymbols, 1, 2)
		if err != nil {
			return "", err
		}
		segments = append(segments, sym)
	}
	return strings.Join(segments, cfg.Separator), nil
}

// drawString returns between min and max characters drawn uniformly from set.
func (g *Generator) drawString(set string, minLen, maxLen int) (string, error) {
	extra, err := g.intn(maxLen - minLen + 1)
	if err != nil {
		return "", err
	}
	alphabet := []rune(set)
	out := make([]rune, minLen+extra)
	for i := range out {
		r, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		out[i] = r
	}
	return string(out), nil
}

func (g *Generator) pick(set []rune) (rune, error) {
	idx, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

func (g *Generator) intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.AssertionFailedf("intn called with n=%d", n)
	}
	v, err := rand.Int(g.rnd, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "read secure random source")
	}
	return int(v.Int64()), nil
}

func (g *Generator) shuffle(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
