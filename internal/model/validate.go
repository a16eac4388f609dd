package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// NewGenerationConfig builds and validates a password configuration.
func NewGenerationConfig(length int, classes []CharClass, excludeAmbiguous bool) (GenerationConfig, error) {
	cfg := GenerationConfig{Length: length, ExcludeAmbiguous: excludeAmbiguous}
	for _, c := range classes {
		switch c {
		case ClassLowercase:
			cfg.UseLowercase = true
		case ClassUppercase:
			cfg.UseUppercase = true
		case ClassDigit:
			cfg.UseDigits = true
		case ClassSymbol:
			cfg.UseSymbols = true
		default:
			return GenerationConfig{}, InvalidConfigf("unknown character class %q", c)
		}
	}
	if err := cfg.Validate(); err != nil {
		return GenerationConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
//
// A length shorter than the number of enabled classes is rejected because every
// generated password carries at least one character of each enabled class.
func (c GenerationConfig) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	enabled := len(c.EnabledClasses())
	if enabled == 0 {
		return EmptyPoolf("no character class enabled")
	}
	if c.Length < enabled {
		return InvalidConfigf("length %d is shorter than the %d enabled character classes", c.Length, enabled)
	}
	if need := enabled * c.PerClass(); c.Length < need {
		return InvalidConfigf("length %d cannot hold %d characters from each of %d classes", c.Length, c.PerClass(), enabled)
	}
	return nil
}

// NewPassphraseConfig builds and validates a passphrase configuration.
func NewPassphraseConfig(words int, separator string, capitalize, numbers, symbols bool) (PassphraseConfig, error) {
	cfg := PassphraseConfig{
		WordCount:  words,
		Separator:  separator,
		Capitalize: capitalize,
		AddNumbers: numbers,
		AddSymbols: symbols,
	}
	if err := cfg.Validate(); err != nil {
		return PassphraseConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c PassphraseConfig) Validate() error {
	return validateStruct(c)
}

func validateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return InvalidConfigf("validate config: %v", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return InvalidConfigf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}
