package service

import (
	"errors"
	"fmt"
)

// Error taxonomy. Services wrap these sentinels with context via %w so
// callers can branch with errors.Is at the request boundary.
var (
	// ErrValidation covers missing, malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount rejects absent, zero or negative ledger amounts.
	// It is itself a validation error.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive number", ErrValidation)

	// ErrAccountNotFound indicates the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount indicates the email or username is already taken.
	ErrDuplicateAccount = fmt.Errorf("%w: an account with that email or username already exists", ErrValidation)

	// ErrInvalidCredentials indicates a failed signin attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized indicates the acting principal lacks the admin capability.
	ErrUnauthorized = errors.New("administrator access required")

	// ErrPersistence indicates a store read/write failure. Operations that
	// return it guarantee no partial effect is observable.
	ErrPersistence = errors.New("persistence failure")
)

// persistence wraps a store error so it matches ErrPersistence while keeping
// the original chain intact.
func persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
