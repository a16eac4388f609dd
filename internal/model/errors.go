package model

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidConfig marks configurations that violate a generation invariant.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrEmptyPool marks configurations that leave no characters to draw from.
	ErrEmptyPool = errors.New("character pool is empty")
)

// InvalidConfigf builds an error matching ErrInvalidConfig.
func InvalidConfigf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

// EmptyPoolf builds an error matching ErrEmptyPool.
func EmptyPoolf(format string, args ...any) error {
	return errors.Wrapf(ErrEmptyPool, format, args...)
}
