//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_admin_put_test
package product_admin_put

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
	UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
}
