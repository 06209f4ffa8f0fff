package cart

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrQuantityExceedsStock  = errors.New("quantity exceeds available stock")

	ErrItemNotFound    = errors.New("cart item not found")
	ErrVariantNotFound = errors.New("variant not found")
)
