package existence

import (
	"errors"
	"fmt"
)

// Error represents a contract violation detected at construction time.
//
// Construction errors include:
//   - Invalid argument: nil member passed to a constructor, negative value
//     passed to Natural, negative base or exponent in a factored integer
//   - Domain violation: forcing a sign change on a kind fixed to one sign
//
// Nothing here is transient; callers must not retry.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Kind identifies the entity kind being constructed.
	Kind string

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a constructor received an argument
	// outside its contract (nil member, negative natural, negative factor).
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeDomainViolation indicates an operation attempted to force a
	// sign or polarity change on a kind fixed to one sign.
	ErrCodeDomainViolation ErrorCode = "DOMAIN_VIOLATION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s (kind=%s)", e.Code, e.Message, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if the error is an invalid-argument error.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidArgument
	}
	return false
}

// IsDomainViolation returns true if the error is a domain-violation error.
// Uses errors.As to handle wrapped errors.
func IsDomainViolation(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeDomainViolation
	}
	return false
}

// NewInvalidArgument creates an Error for a contract-violating argument.
func NewInvalidArgument(kind, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: message,
		Kind:    kind,
	}
}

// NewDomainViolation creates an Error for a forbidden sign change.
func NewDomainViolation(kind, message string) *Error {
	return &Error{
		Code:    ErrCodeDomainViolation,
		Message: message,
		Kind:    kind,
	}
}
