package coupon

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCode           = errors.New("invalid coupon code")
	ErrInvalidDiscountType   = errors.New("invalid discount type")
	ErrInvalidDiscountValue  = errors.New("invalid discount value")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidCategory       = errors.New("invalid category")

	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponInactive     = errors.New("coupon is not active")
	ErrCouponExpired      = errors.New("coupon expired")
	ErrMinPurchaseNotMet  = errors.New("minimum purchase not met")
	ErrUsageLimitExceeded = errors.New("coupon usage limit exceeded")
	ErrAlreadyRedeemed    = errors.New("coupon already redeemed by user")
	ErrCategoryMismatch   = errors.New("coupon not applicable to cart categories")
	ErrConflict           = errors.New("coupon code already exists")
)
