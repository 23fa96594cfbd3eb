package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("manufacturer profile not found")
	ErrQuoteUnavailable   = errors.New("quote service unreachable")
)

// ValidationError carries the exact user-facing message for a missing or
// malformed request field. It always maps to HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// QuoteUpstreamError is returned when the quote service responded with a
// non-success status. It is distinct from ErrQuoteUnavailable, which means
// no response was received at all.
type QuoteUpstreamError struct {
	Status  int
	Message string
}

func (e *QuoteUpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "quote service error"
}
