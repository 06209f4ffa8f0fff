//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouse_delete_test
package warehouse_delete

import (
	"context"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteWarehouse(ctx context.Context, id int64) error
}
