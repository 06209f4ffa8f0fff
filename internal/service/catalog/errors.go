package catalog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid product name")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidDiscount       = errors.New("invalid discount")
	ErrInvalidStock          = errors.New("invalid stock")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("resource already exists")
)
