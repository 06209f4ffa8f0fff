package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidPostalCode     = errors.New("invalid postal code")

	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")
)
