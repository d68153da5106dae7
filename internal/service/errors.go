package service

import (
	"errors"

	"gorm.io/gorm"
)

// Error taxonomy surfaced to the HTTP layer. Anything outside these
// sentinels is a store failure and propagates untouched.
var (
	// ErrDuplicateKey reports a uniqueness violation (username or email taken).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound reports a referenced user or message that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized reports a denied operation (missing actor or wrong owner).
	ErrUnauthorized = errors.New("access unauthorized")
	// ErrInvalid reports input that fails domain validation.
	ErrInvalid = errors.New("invalid input")
)

// translate maps store-level errors to the service taxonomy. Relies on
// gorm.Config{TranslateError: true} so uniqueness violations look the same
// on MySQL and SQLite.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
