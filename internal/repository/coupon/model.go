package coupon

import "time"

type CouponDB struct {
	ID                   int64     `db:"id"`
	Code                 string    `db:"code"`
	DiscountType         string    `db:"discount_type"`
	DiscountValue        int64     `db:"discount_value"`
	MinPurchase          int64     `db:"min_purchase"`
	ExpiryDate           time.Time `db:"expiry_date"`
	IsActive             bool      `db:"is_active"`
	MaxUses              int32     `db:"max_uses"`
	UsedCount            int32     `db:"used_count"`
	OncePerUser          bool      `db:"once_per_user"`
	ApplicableCategories []string  `db:"applicable_categories"`
	CreatedAt            time.Time `db:"created_at"`
}

type CouponModifyDB struct {
	ID                   *int64
	Code                 *string
	DiscountType         *string
	DiscountValue        *int64
	MinPurchase          *int64
	ExpiryDate           *time.Time
	IsActive             *bool
	MaxUses              *int32
	OncePerUser          *bool
	ApplicableCategories *[]string
}
