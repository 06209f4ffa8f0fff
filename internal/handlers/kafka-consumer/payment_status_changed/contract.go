package payment_status_changed

import (
	"storefront/internal/entities"
	"storefront/internal/pkg/factory/payment_handle"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(status entities.PaymentStatusType) (payment_handle.ExecuteFn, error)
}
