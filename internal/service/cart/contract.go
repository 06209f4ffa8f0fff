//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetItems(ctx context.Context, userID int64) ([]entities.CartItem, error)
	UpsertItem(ctx context.Context, userID, productID, variantID int64, quantity int32, unitPrice int64) error
	UpdateQuantity(ctx context.Context, userID, productID, variantID int64, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID, variantID int64) error
	Clear(ctx context.Context, userID int64) error
}

type VariantReader interface {
	GetVariant(ctx context.Context, variantID int64) (*entities.Variant, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
