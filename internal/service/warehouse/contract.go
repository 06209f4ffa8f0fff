//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouse_test
package warehouse

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, warehouseModify entities.WarehouseModify) (int64, error)
	Update(ctx context.Context, warehouseModify entities.WarehouseModify) (*entities.Warehouse, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]entities.Warehouse, error)
}
