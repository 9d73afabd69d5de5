package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("invalid submission")
	ErrStoreUnavailable = errors.New("submission store is not available")
	ErrNotFound         = errors.New("submission not found")
)

// FieldError carries field-level validation detail. It unwraps to
// ErrValidation so transport layers can classify it with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid submission: %s %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return ErrValidation
}

func NewFieldError(field string, reason string) error {
	return FieldError{Field: field, Reason: reason}
}
