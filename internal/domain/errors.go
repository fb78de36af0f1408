package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIntegrityViolation = errors.New("integrity violation")
)

// Specific conflicts the reservation engine needs to tell apart:
// a duplicate confirmation number is retryable with a fresh code,
// a taken seat is not.
var (
	ErrSeatTaken              = fmt.Errorf("%w: seat already taken", ErrConflict)
	ErrDuplicateConfirmation  = fmt.Errorf("%w: confirmation number already in use", ErrConflict)
)
