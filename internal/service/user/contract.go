//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)

	GetAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
	AddAddress(ctx context.Context, address entities.Address) (int64, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}
