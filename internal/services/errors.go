package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed request fields.
	ErrValidation = errors.New("invalid request")
	// ErrUserNotFound means the referenced user id has no account record.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnsupportedSource rejects source kinds the pipeline does not
	// translate yet (uploaded videos are an unimplemented variant, never
	// silently coerced).
	ErrUnsupportedSource = errors.New("unsupported video source")
	// ErrInsufficientCredits is returned by the ledger when a conditional
	// deduction finds the live balance short.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// InsufficientCreditsError carries required-vs-available amounts for
// display when a request is rejected before translation.
type InsufficientCreditsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d", e.Required, e.Available)
}
