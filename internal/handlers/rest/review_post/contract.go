//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_post_test
package review_post

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
	AddReview(ctx context.Context, review entities.Review) (int64, error)
}
