package errors

import "errors"

var (
	ErrUnauthorized        = errors.New("Unauthorized")
	ErrAlreadyOwnsBusiness = errors.New("You already have a claimed business")
	ErrClaimFailed         = errors.New("Unable to claim this business. It may already be claimed or not approved.")
	ErrInvalidProfile      = errors.New("invalid profile update")
	ErrStoreUnavailable    = errors.New("business store is not available")
	ErrBusinessNotFound    = errors.New("business not found")
)
