//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=advertisement_post_test
package advertisement_post

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
	CreateAdvertisement(ctx context.Context, adModify entities.AdvertisementModify) (int64, error)
}
