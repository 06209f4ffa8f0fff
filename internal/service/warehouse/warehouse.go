package warehouse

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Warehouse struct {
	repository Repository
}

func New(repository Repository) *Warehouse {
	return &Warehouse{
		repository: repository,
	}
}

func (s *Warehouse) CreateWarehouse(ctx context.Context, warehouseModify entities.WarehouseModify) (int64, error) {
	if warehouseModify.Name == nil ||
		warehouseModify.Phone == nil ||
		warehouseModify.Address == nil ||
		warehouseModify.City == nil ||
		warehouseModify.State == nil ||
		warehouseModify.Pincode == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*warehouseModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*warehouseModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPincode(*warehouseModify.Pincode) {
		return 0, ErrInvalidPincode
	}

	id, err := s.repository.Create(ctx, warehouseModify)
	if err != nil {
		return 0, fmt.Errorf("create warehouse: %w", err)
	}
	return id, nil
}

func (s *Warehouse) UpdateWarehouse(ctx context.Context, warehouseModify entities.WarehouseModify) (*entities.Warehouse, error) {
	if warehouseModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if warehouseModify.Name == nil &&
		warehouseModify.Phone == nil &&
		warehouseModify.Address == nil &&
		warehouseModify.City == nil &&
		warehouseModify.State == nil &&
		warehouseModify.Pincode == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if warehouseModify.Name != nil && !isValidName(*warehouseModify.Name) {
		return nil, ErrInvalidName
	}
	if warehouseModify.Phone != nil && !isValidPhone(*warehouseModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if warehouseModify.Pincode != nil && !isValidPincode(*warehouseModify.Pincode) {
		return nil, ErrInvalidPincode
	}

	warehouse, err := s.repository.Update(ctx, warehouseModify)
	if err != nil {
		return nil, fmt.Errorf("update warehouse: %w", err)
	}
	return warehouse, nil
}

func (s *Warehouse) DeleteWarehouse(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func (s *Warehouse) GetWarehouses(ctx context.Context) ([]entities.Warehouse, error) {
	warehouses, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get warehouses: %w", err)
	}
	return warehouses, nil
}
