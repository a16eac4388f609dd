package generator

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/genpass/internal/charset"
	"github.com/verte-zerg/genpass/internal/model"
)

var allClasses = model.GenerationConfig{
	Length:       16,
	UseLowercase: true,
	UseUppercase: true,
	UseDigits:    true,
	UseSymbols:   true,
}

func TestPasswordLengthAndMembership(t *testing.T) {
	g := New()
	cfg := allClasses
	cfg.ExcludeAmbiguous = true
	pool, err := charset.BuildPool(cfg)
	require.NoError(t, err)
	members := pool.Runes()

	for i := 0; i < 200; i++ {
		pw, err := g.Password(cfg)
		require.NoError(t, err)
		require.Len(t, []rune(pw), cfg.Length)
		for _, r := range pw {
			require.Contains(t, members, r, "rune %q outside pool", r)
		}
	}
}

func TestPasswordContainsEveryClass(t *testing.T) {
	g := New()
	cfg := allClasses
	cfg.Length = 4
	for i := 0; i < 500; i++ {
		pw, err := g.Password(cfg)
		require.NoError(t, err)
		assert.True(t, strings.ContainsAny(pw, charset.Lowercase), pw)
		assert.True(t, strings.ContainsAny(pw, charset.Uppercase), pw)
		assert.True(t, strings.ContainsAny(pw, charset.Digits), pw)
		assert.True(t, strings.ContainsAny(pw, charset.Symbols), pw)
	}
}

func TestPasswordPerClassMinimum(t *testing.T) {
	g := New()
	cfg := allClasses
	cfg.Length = 16
	cfg.MinPerClass = 4
	cfg.ExcludeSimilar = true
	for i := 0; i < 200; i++ {
		pw, err := g.Password(cfg)
		require.NoError(t, err)
		counts := map[model.CharClass]int{}
		for _, r := range pw {
			require.False(t, charset.IsSimilar(r), "similar rune %q in %s", r, pw)
			class, _ := charset.Classify(r)
			counts[class]++
		}
		for _, class := range model.AllClasses {
			assert.Equal(t, 4, counts[class], "%s in %s", class, pw)
		}
	}

	cfg.MinPerClass = 5
	_, err := g.Password(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))
}

func TestPasswordMandatoryCharactersMove(t *testing.T) {
	g := New()
	cfg := model.GenerationConfig{Length: 2, UseLowercase: true, UseDigits: true}
	firstIsDigit := 0
	for i := 0; i < 400; i++ {
		pw, err := g.Password(cfg)
		require.NoError(t, err)
		if unicode.IsDigit(rune(pw[0])) {
			firstIsDigit++
		}
	}
	assert.Greater(t, firstIsDigit, 0)
	assert.Less(t, firstIsDigit, 400)
}

func TestPasswordErrors(t *testing.T) {
	g := New()

	_, err := g.Password(model.GenerationConfig{Length: 8})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrEmptyPool))

	cfg := allClasses
	cfg.Length = 3
	_, err = g.Password(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))

	cfg.Length = 0
	_, err = g.Password(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))
}

func TestPassphraseSegments(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie"}
	g := New(WithWords(words))

	tests := []struct {
		name string
		cfg  model.PassphraseConfig
		want int
	}{
		{name: "plain", cfg: model.PassphraseConfig{WordCount: 4, Separator: "-"}, want: 4},
		{name: "numbers", cfg: model.PassphraseConfig{WordCount: 3, Separator: "_", AddNumbers: true}, want: 4},
		{name: "everything", cfg: model.PassphraseConfig{WordCount: 5, Separator: ".", Capitalize: true, AddNumbers: true, AddSymbols: true}, want: 7},
		{name: "single", cfg: model.PassphraseConfig{WordCount: 1, Separator: "-"}, want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				pp, err := g.Passphrase(tc.cfg)
				require.NoError(t, err)
				parts := strings.Split(pp, tc.cfg.Separator)
				require.Len(t, parts, tc.want, pp)
				for _, word := range parts[:tc.cfg.WordCount] {
					lower := strings.ToLower(word)
					assert.Contains(t, words, lower)
					if tc.cfg.Capitalize {
						assert.True(t, unicode.IsUpper(rune(word[0])), word)
					} else {
						assert.Equal(t, lower, word)
					}
				}
				rest := parts[tc.cfg.WordCount:]
				if tc.cfg.AddNumbers {
					num := rest[0]
					assert.GreaterOrEqual(t, len(num), 1)
					assert.LessOrEqual(t, len(num), 3)
					assert.Empty(t, strings.Trim(num, charset.Digits))
					rest = rest[1:]
				}
				if tc.cfg.AddSymbols {
					sym := rest[0]
					assert.GreaterOrEqual(t, len(sym), 1)
					assert.LessOrEqual(t, len(sym), 2)
					assert.Empty(t, strings.Trim(sym, charset.PassphraseSymbols))
				}
			}
		})
	}
}

func TestPassphraseUsesBuiltInList(t *testing.T) {
	g := New()
	require.Greater(t, g.Words(), 2000)
	pp, err := g.Passphrase(model.PassphraseConfig{WordCount: 6, Separator: " "})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(pp), 6)
}

func TestPassphraseErrors(t *testing.T) {
	_, err := New().Passphrase(model.PassphraseConfig{WordCount: 0, Separator: "-"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))

	_, err = New(WithWords([]string{})).Passphrase(model.PassphraseConfig{WordCount: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))
}

func TestPasswordBatch(t *testing.T) {
	g := New()
	out, err := g.PasswordBatch(allClasses, 100)
	require.NoError(t, err)
	require.Len(t, out, 100)

	distinct := map[string]struct{}{}
	for _, pw := range out {
		require.Len(t, pw, allClasses.Length)
		assert.True(t, strings.ContainsAny(pw, charset.Symbols), pw)
		distinct[pw] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestPassphraseBatch(t *testing.T) {
	g := New()
	cfg := model.PassphraseConfig{WordCount: 4, Separator: "-", AddNumbers: true}
	out, err := g.PassphraseBatch(cfg, 100)
	require.NoError(t, err)
	require.Len(t, out, 100)
	for _, pp := range out {
		assert.Len(t, strings.Split(pp, "-"), 5)
	}
}

func TestBatchErrors(t *testing.T) {
	g := New()

	_, err := g.PasswordBatch(allClasses, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))

	_, err = g.PasswordBatch(model.GenerationConfig{Length: 8}, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrEmptyPool))

	_, err = g.PassphraseBatch(model.PassphraseConfig{WordCount: 0}, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))
}

var errSourceDrained = errors.New("source drained")

// limitedReader serves n bytes of zeros and then fails.
type limitedReader struct {
	mu sync.Mutex
	n  int
}

func (r *limitedReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n <= 0 {
		return 0, errSourceDrained
	}
	k := min(len(p), r.n)
	clear(p[:k])
	r.n -= k
	return k, nil
}

func TestRandomSourceFailurePropagates(t *testing.T) {
	g := New(WithRandom(&limitedReader{n: 0}))
	_, err := g.Password(allClasses)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSourceDrained))

	g = New(WithRandom(&limitedReader{n: 64}))
	out, err := g.PasswordBatch(allClasses, 50)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, errSourceDrained))
}
