package errors

import "errors"

// Sentinel texts double as the user-facing messages rendered by the
// transport layer.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotConfigured    = errors.New("Newsletter service is not configured. Please contact the site administrator.")
	ErrAuthFailed       = errors.New("Authentication failed. Please check API credentials.")
	ErrConnection       = errors.New("Unable to connect to newsletter service. Please try again later.")
	ErrDuplicateContact = errors.New("This email may already be subscribed.")
)

// DuplicateContactError carries the provider's own duplicate explanation
// when it sends one.
type DuplicateContactError struct {
	Message string
}

func (e *DuplicateContactError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrDuplicateContact.Error()
}

func (e *DuplicateContactError) Unwrap() error {
	return ErrDuplicateContact
}

// ProviderError is any other non-success response from the CRM.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Failed to subscribe. Please try again."
}
