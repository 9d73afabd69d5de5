package errors

import "errors"

var (
	ErrUnauthorized  = errors.New("Unauthorized")
	ErrInvalidStatus = errors.New("status must be approved or rejected")
)
