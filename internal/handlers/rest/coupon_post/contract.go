//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coupon_post_test
package coupon_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateCoupon(ctx context.Context, couponModify entities.CouponModify) (int64, error)
}
