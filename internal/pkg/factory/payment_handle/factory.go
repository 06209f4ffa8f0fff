package payment_handle

import (
	"context"
	"fmt"

	"storefront/internal/entities"
	"storefront/internal/service/order"
)

type ExecuteFn func(ctx context.Context, gatewayOrderID string) error

// StatusHandlerFactory сопоставляет платежное событие шлюза действию
// над заказом.
type StatusHandlerFactory struct {
	orderService *order.Service
}

func NewStatusHandlerFactory(orderService *order.Service) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (ExecuteFn, error) {
	switch status {
	case entities.PaymentPaid:
		return f.paidHandler, nil
	case entities.PaymentFailed:
		return f.failedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrInvalidStatus, status)
	}
}

func (f *StatusHandlerFactory) paidHandler(ctx context.Context, gatewayOrderID string) error {
	_, err := f.orderService.SettlePayment(ctx, gatewayOrderID, entities.PaymentPaid)
	if err != nil {
		return fmt.Errorf("settle captured payment %s: %w", gatewayOrderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, gatewayOrderID string) error {
	_, err := f.orderService.SettlePayment(ctx, gatewayOrderID, entities.PaymentFailed)
	if err != nil {
		return fmt.Errorf("settle failed payment %s: %w", gatewayOrderID, err)
	}
	return nil
}
