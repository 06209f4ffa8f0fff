//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_item_delete_test
package cart_item_delete

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
	RemoveItem(ctx context.Context, userID, productID, variantID int64) (*entities.Cart, error)
}
