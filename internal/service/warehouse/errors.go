package warehouse

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidPincode        = errors.New("invalid pincode")

	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrConflict          = errors.New("resource already exists")
)
