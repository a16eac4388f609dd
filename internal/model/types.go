// Package model defines shared data structures.
package model

import "time"

// CharClass names one of the four character classes.
type CharClass string

// Character classes in canonical order.
const (
	ClassLowercase CharClass = "lowercase"
	ClassUppercase CharClass = "uppercase"
	ClassDigit     CharClass = "digit"
	ClassSymbol    CharClass = "symbol"
)

// AllClasses lists every class in canonical order.
var AllClasses = []CharClass{ClassLowercase, ClassUppercase, ClassDigit, ClassSymbol}

// GenerationConfig defines password generation settings.
type GenerationConfig struct {
	Length           int `validate:"min=1"`
	UseLowercase     bool
	UseUppercase     bool
	UseDigits        bool
	UseSymbols       bool
	ExcludeAmbiguous bool
	ExcludeSimilar   bool
	// MinPerClass is how many characters each enabled class contributes at
	// least. Zero means one.
	MinPerClass int `validate:"min=0"`
}

// PerClass returns the effective per-class minimum.
func (c GenerationConfig) PerClass() int {
	return max(1, c.MinPerClass)
}

// EnabledClasses returns the enabled classes in canonical order.
func (c GenerationConfig) EnabledClasses() []CharClass {
	var out []CharClass
	if c.UseLowercase {
		out = append(out, ClassLowercase)
	}
	if c.UseUppercase {
		out = append(out, ClassUppercase)
	}
	if c.UseDigits {
		out = append(out, ClassDigit)
	}
	if c.UseSymbols {
		out = append(out, ClassSymbol)
	}
	return out
}

// PassphraseConfig defines passphrase generation settings.
type PassphraseConfig struct {
	WordCount  int `validate:"min=1"`
	Separator  string
	Capitalize bool
	AddNumbers bool
	AddSymbols bool
}

// Tier is the coarse strength classification of a score.
type Tier string

// Strength tiers, weakest first.
const (
	TierVeryWeak   Tier = "very_weak"
	TierWeak       Tier = "weak"
	TierFair       Tier = "fair"
	TierStrong     Tier = "strong"
	TierVeryStrong Tier = "very_strong"
)

// AllTiers lists every tier, weakest first.
var AllTiers = []Tier{TierVeryWeak, TierWeak, TierFair, TierStrong, TierVeryStrong}

// Label returns a human-readable tier name.
func (t Tier) Label() string {
	switch t {
	case TierVeryWeak:
		return "Very weak"
	case TierWeak:
		return "Weak"
	case TierFair:
		return "Fair"
	case TierStrong:
		return "Strong"
	case TierVeryStrong:
		return "Very strong"
	default:
		return string(t)
	}
}

// WeaknessCode identifies a detected weakness.
type WeaknessCode string

// Weakness codes in reporting order.
const (
	WeaknessEmpty      WeaknessCode = "empty"
	WeaknessShort      WeaknessCode = "short"
	WeaknessFewClasses WeaknessCode = "few_classes"
	WeaknessRepeated   WeaknessCode = "repeated"
	WeaknessSequential WeaknessCode = "sequential"
	WeaknessKeyboard   WeaknessCode = "keyboard"
	WeaknessCommon     WeaknessCode = "common"
	WeaknessNearCommon WeaknessCode = "near_common"
	WeaknessSingleKind WeaknessCode = "single_kind"
	WeaknessCommonTerm WeaknessCode = "common_term"
	WeaknessYear       WeaknessCode = "year"
	WeaknessLowVariety WeaknessCode = "low_variety"
)

// Weakness is a single detected problem and the score penalty it carries.
type Weakness struct {
	Code    WeaknessCode `json:"code" yaml:"code"`
	Message string       `json:"message" yaml:"message"`
	Penalty int          `json:"penalty" yaml:"penalty"`
}

// CrackTime is the estimated exhaustion time for one attack scenario.
// Seconds saturates at math.MaxFloat64 above roughly 1024 bits of entropy;
// Log2Seconds is computed without saturation.
type CrackTime struct {
	Scenario         string  `json:"scenario" yaml:"scenario"`
	GuessesPerSecond float64 `json:"guesses_per_second" yaml:"guesses_per_second"`
	Seconds          float64 `json:"seconds" yaml:"seconds"`
	Log2Seconds      float64 `json:"log2_seconds" yaml:"log2_seconds"`
	Display          string  `json:"display" yaml:"display"`
}

// Report is the result of analysing one input string.
type Report struct {
	Input           string      `json:"input,omitempty" yaml:"input,omitempty"`
	Length          int         `json:"length" yaml:"length"`
	Classes         []CharClass `json:"classes" yaml:"classes"`
	EntropyBits     float64     `json:"entropy_bits" yaml:"entropy_bits"`
	Score           int         `json:"score" yaml:"score"`
	Tier            Tier        `json:"tier" yaml:"tier"`
	Weaknesses      []Weakness  `json:"weaknesses" yaml:"weaknesses"`
	CrackTimes      []CrackTime `json:"crack_times" yaml:"crack_times"`
	Recommendations []string    `json:"recommendations" yaml:"recommendations"`
	// Compliance is set when the input was checked against a preset.
	Compliance *Compliance `json:"compliance,omitempty" yaml:"compliance,omitempty"`
}

// ComplianceCheck is one preset requirement and whether the input meets it.
type ComplianceCheck struct {
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
}

// Compliance is the result of checking an input against a preset.
type Compliance struct {
	Preset    string            `json:"preset" yaml:"preset"`
	Compliant bool              `json:"compliant" yaml:"compliant"`
	Checks    []ComplianceCheck `json:"checks" yaml:"checks"`
}

// HasClass reports whether the class is present in the input.
func (r Report) HasClass(c CharClass) bool {
	for _, have := range r.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// HasWeakness reports whether a weakness with the code was detected.
func (r Report) HasWeakness(code WeaknessCode) bool {
	for _, w := range r.Weaknesses {
		if w.Code == code {
			return true
		}
	}
	return false
}

// CrackTime looks up the estimate for a scenario by name.
func (r Report) CrackTime(scenario string) (CrackTime, bool) {
	for _, ct := range r.CrackTimes {
		if ct.Scenario == scenario {
			return ct, true
		}
	}
	return CrackTime{}, false
}

// Source tells where an analysed string came from.
type Source string

// Analysis sources.
const (
	SourceGenerated Source = "generated"
	SourceEntered   Source = "entered"
)

// AnalysisRecord is the persisted metadata of one analysis. It never holds the input.
type AnalysisRecord struct {
	ID          int64
	CreatedAt   time.Time
	Source      Source
	Length      int
	Classes     []CharClass
	EntropyBits float64
	Score       int
	Tier        Tier
	Weaknesses  []WeaknessCode
}

// NewAnalysisRecord strips a report down to storable metadata.
func NewAnalysisRecord(r Report, source Source, at time.Time) AnalysisRecord {
	codes := make([]WeaknessCode, 0, len(r.Weaknesses))
	for _, w := range r.Weaknesses {
		codes = append(codes, w.Code)
	}
	classes := make([]CharClass, len(r.Classes))
	copy(classes, r.Classes)
	return AnalysisRecord{
		CreatedAt:   at,
		Source:      source,
		Length:      r.Length,
		Classes:     classes,
		EntropyBits: r.EntropyBits,
		Score:       r.Score,
		Tier:        r.Tier,
		Weaknesses:  codes,
	}
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Since  *time.Time
	Last   int
	Window int
}

// WeaknessCount aggregates how often a weakness was recorded.
type WeaknessCount struct {
	Code  WeaknessCode
	Count int
}
