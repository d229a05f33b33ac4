package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Handlers map these onto the
// HTTP error envelope; wrap with fmt.Errorf("%w: detail", Err...) to
// attach context without losing the class.
var (
	// ErrNotFound: a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation: missing required field or malformed input.
	ErrValidation = errors.New("validation error")

	// ErrPolicyViolation: the operation is rejected before any
	// mutation (empty transfer selection, unknown sheet type).
	ErrPolicyViolation = errors.New("policy violation")
)

// notFoundf wraps ErrNotFound with context.
func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// validationf wraps ErrValidation with context.
func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// policyf wraps ErrPolicyViolation with context.
func policyf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPolicyViolation, fmt.Sprintf(format, args...))
}
