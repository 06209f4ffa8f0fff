//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=advertisements_get_test
package advertisements_get

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
	GetAdvertisements(ctx context.Context) ([]entities.Advertisement, error)
}
