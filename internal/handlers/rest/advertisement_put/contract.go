//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=advertisement_put_test
package advertisement_put

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
	UpdateAdvertisement(ctx context.Context, adModify entities.AdvertisementModify) (*entities.Advertisement, error)
}
