package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationConfig(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		classes []CharClass
		wantErr error
	}{
		{name: "all classes", length: 12, classes: AllClasses},
		{name: "single class length one", length: 1, classes: []CharClass{ClassDigit}},
		{name: "zero length", length: 0, classes: AllClasses, wantErr: ErrInvalidConfig},
		{name: "negative length", length: -3, classes: []CharClass{ClassLowercase}, wantErr: ErrInvalidConfig},
		{name: "shorter than classes", length: 3, classes: AllClasses, wantErr: ErrInvalidConfig},
		{name: "no classes", length: 8, wantErr: ErrEmptyPool},
		{name: "unknown class", length: 8, classes: []CharClass{"emoji"}, wantErr: ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewGenerationConfig(tc.length, tc.classes, false)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.length, cfg.Length)
			assert.Len(t, cfg.EnabledClasses(), len(tc.classes))
		})
	}
}

func TestGenerationConfigErrorsAreDistinct(t *testing.T) {
	err := GenerationConfig{Length: 10}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPool))
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewPassphraseConfig(t *testing.T) {
	cfg, err := NewPassphraseConfig(4, "-", true, true, false)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WordCount)
	assert.Equal(t, "-", cfg.Separator)

	_, err = NewPassphraseConfig(0, "-", true, true, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "WordCount")
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset("HIGH")
	require.NoError(t, err)
	assert.Equal(t, 16, p.Config.Length)
	assert.True(t, p.Config.ExcludeAmbiguous)
	require.NoError(t, p.Config.Validate())

	_, err = LookupPreset("paranoid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	assert.Equal(t, []string{"minimum", "standard", "high", "maximum", "military"}, PresetNames())

	for _, p := range Presets() {
		require.NoError(t, p.Config.Validate(), p.Name)
		assert.Positive(t, p.MinEntropy, p.Name)
	}
	military, err := LookupPreset("military")
	require.NoError(t, err)
	assert.Equal(t, 4, military.Config.PerClass())
	assert.True(t, military.Config.ExcludeSimilar)
}

func TestGenerationConfigPerClass(t *testing.T) {
	cfg := GenerationConfig{Length: 8, UseLowercase: true, UseDigits: true}
	assert.Equal(t, 1, cfg.PerClass())

	cfg.MinPerClass = 4
	require.NoError(t, cfg.Validate())

	cfg.MinPerClass = 5
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	cfg.MinPerClass = -1
	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewAnalysisRecordDropsInput(t *testing.T) {
	r := Report{
		Input:      "hunter2",
		Length:     7,
		Classes:    []CharClass{ClassLowercase, ClassDigit},
		Score:      12,
		Tier:       TierVeryWeak,
		Weaknesses: []Weakness{{Code: WeaknessShort}, {Code: WeaknessFewClasses}},
	}
	rec := NewAnalysisRecord(r, SourceEntered, time.Unix(0, 0))
	assert.Equal(t, 7, rec.Length)
	assert.Equal(t, []WeaknessCode{WeaknessShort, WeaknessFewClasses}, rec.Weaknesses)
	assert.Equal(t, SourceEntered, rec.Source)
}
