//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coupon_test
package coupon

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, couponModify entities.CouponModify) (int64, error)
	Update(ctx context.Context, couponModify entities.CouponModify) (*entities.Coupon, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (*entities.Coupon, error)
	GetAll(ctx context.Context) ([]entities.Coupon, error)

	IncrementUsage(ctx context.Context, id int64) error
	HasRedemption(ctx context.Context, couponID, userID int64) (bool, error)
	RecordRedemption(ctx context.Context, couponID, userID int64, discount int64) error
	DeactivateExpired(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
