//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=variant_admin_post_test
package variant_admin_post

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
	AddVariant(ctx context.Context, variantModify entities.VariantModify) (int64, error)
}
