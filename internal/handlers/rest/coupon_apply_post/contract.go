//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coupon_apply_post_test
package coupon_apply_post

import (
	"context"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Preview(ctx context.Context, userID int64, code string, subtotal int64) (int64, error)
}
