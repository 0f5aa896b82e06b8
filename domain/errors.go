package domain

import "errors"

// Authentication errors
var (
	ErrMissingToken        = errors.New("missing token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNoRefreshToken      = errors.New("no refresh token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Registration errors
var (
	ErrDuplicateMobile = errors.New("mobile already registered")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// Authorization errors
var (
	ErrForbidden = errors.New("forbidden")
)

// Resource errors
var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrScreenshotNotFound   = errors.New("screenshot not found")
	ErrExpenseNotFound      = errors.New("expense not found")
)

// ErrValidation is the parent of every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError describes a rejected input field.
type ValidationError struct {
	Msg string
}

// NewValidationError wraps msg so errors.Is matches ErrValidation.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IsNotFound reports whether err denotes a missing record of any kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrContributionNotFound) ||
		errors.Is(err, ErrScreenshotNotFound) ||
		errors.Is(err, ErrExpenseNotFound)
}
