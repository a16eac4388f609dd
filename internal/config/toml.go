// Package config provides configuration helpers and TOML parsing.
package config

import (
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/genpass/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Password   PasswordConfig   `toml:"password"`
	Passphrase PassphraseConfig `toml:"passphrase"`
	History    HistoryConfig    `toml:"history"`
}

// PasswordConfig maps password-related settings.
type PasswordConfig struct {
	Preset           *string `toml:"preset"`
	Length           *int    `toml:"length" validate:"omitnil,min=1"`
	Count            *int    `toml:"count" validate:"omitnil,min=1"`
	Lowercase        *bool   `toml:"lowercase"`
	Uppercase        *bool   `toml:"uppercase"`
	Digits           *bool   `toml:"digits"`
	Symbols          *bool   `toml:"symbols"`
	ExcludeAmbiguous *bool   `toml:"exclude-ambiguous"`
	ExcludeSimilar   *bool   `toml:"exclude-similar"`
	MinPerClass      *int    `toml:"min-per-class" validate:"omitnil,min=0"`
}

// PassphraseConfig maps passphrase-related settings.
type PassphraseConfig struct {
	Words      *int    `toml:"words" validate:"omitnil,min=1"`
	Count      *int    `toml:"count" validate:"omitnil,min=1"`
	Separator  *string `toml:"separator"`
	Capitalize *bool   `toml:"capitalize"`
	Numbers    *bool   `toml:"numbers"`
	Symbols    *bool   `toml:"symbols"`
	WordList   *string `toml:"wordlist"`
}

// HistoryConfig maps analysis-history settings.
type HistoryConfig struct {
	Record *bool `toml:"record"`
	Window *int  `toml:"window" validate:"omitnil,min=1"`
}

var fileValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, errors.Wrap(err, "failed to stat config")
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, errors.WithHint(errors.Wrap(err, "failed to decode config"), "run `genpass config` to edit "+path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, errors.WithHint(
			model.InvalidConfigf("unknown config key %q", undecoded[0].String()),
			"run `genpass config` to edit "+path,
		)
	}
	if err := fileValidator().Struct(cfg); err != nil {
		return FileConfig{}, errors.WithHint(model.InvalidConfigf("config %s: %v", path, err), "counts and lengths must be at least 1")
	}
	return cfg, nil
}
