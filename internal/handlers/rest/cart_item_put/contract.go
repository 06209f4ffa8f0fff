//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_put_test
package cart_item_put

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
	UpdateQuantity(ctx context.Context, userID, productID, variantID int64, quantity int32) (*entities.Cart, error)
}
