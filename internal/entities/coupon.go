package entities

import "time"

type Coupon struct {
	ID                   int64
	Code                 string
	DiscountType         DiscountType
	DiscountValue        int64
	MinPurchase          int64
	ExpiryDate           time.Time
	IsActive             bool
	MaxUses              int32
	UsedCount            int32
	OncePerUser          bool
	ApplicableCategories []CategoryType
	CreatedAt            time.Time
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

func (d DiscountType) String() string {
	return string(d)
}

type CouponModify struct {
	ID                   *int64
	Code                 *string
	DiscountType         *DiscountType
	DiscountValue        *int64
	MinPurchase          *int64
	ExpiryDate           *time.Time
	IsActive             *bool
	MaxUses              *int32
	OncePerUser          *bool
	ApplicableCategories *[]CategoryType
}
