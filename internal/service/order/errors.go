package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrCancelNotAllowed      = errors.New("order can no longer be cancelled")

	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("order belongs to another user")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyPaid       = errors.New("payment already captured")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
