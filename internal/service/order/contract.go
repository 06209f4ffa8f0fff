//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.Order, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) error
	UpdatePaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatusType) error
}

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*entities.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

type StockKeeper interface {
	DecrementStock(ctx context.Context, variantID int64, quantity int32) error
	IncrementStock(ctx context.Context, variantID int64, quantity int32) error
}

type CouponRedeemer interface {
	Redeem(ctx context.Context, userID int64, code string, subtotal int64, categories []entities.CategoryType) (int64, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// GatewayOrder — заказ, созданный на стороне платежного шлюза.
// Amount в минимальных единицах валюты (пайсах).
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
