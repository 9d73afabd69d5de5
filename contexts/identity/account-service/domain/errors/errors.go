package errors

import "errors"

var (
	// ErrVerifierNotConfigured indicates no provider URL or signing key is set.
	ErrVerifierNotConfigured = errors.New("token verifier is not configured")
	// ErrTokenInvalid indicates the provider rejected the access token.
	ErrTokenInvalid = errors.New("access token is invalid")
)
