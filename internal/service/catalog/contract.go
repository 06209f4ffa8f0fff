//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify, variants []entities.VariantModify) (int64, error)
	Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
	GetAll(ctx context.Context) ([]entities.Product, error)
	GetByCategory(ctx context.Context, category entities.CategoryType) ([]entities.Product, error)

	AddVariant(ctx context.Context, variantModify entities.VariantModify) (int64, error)
	GetVariant(ctx context.Context, variantID int64) (*entities.Variant, error)
	AdjustStock(ctx context.Context, variantID int64, delta int32) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review entities.Review) (int64, error)
	GetByProduct(ctx context.Context, productID int64) ([]entities.Review, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
