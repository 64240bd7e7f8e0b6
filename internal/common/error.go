// Package common defines sentinel errors shared by the CarFlow client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account validation errors.
	ErrEmailInUse           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrIncorrectPassword    = errors.New("current password incorrect")
	ErrIncorrectAccountKind = errors.New("account kind must be client or agency")

	// Local data errors.
	ErrCorruptedData = errors.New("corrupted local data")
)
