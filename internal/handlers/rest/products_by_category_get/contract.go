//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=products_by_category_get_test
package products_by_category_get

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
	GetProductsByCategory(ctx context.Context, category entities.CategoryType) ([]entities.Product, error)
}
