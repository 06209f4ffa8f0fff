//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_verify_post_test
package payment_verify_post

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
	VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*entities.Order, error)
}
