//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=advertisement_test
package advertisement

import (
	"context"
	"time"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, adModify entities.AdvertisementModify) (int64, error)
	Update(ctx context.Context, adModify entities.AdvertisementModify) (*entities.Advertisement, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]entities.Advertisement, error)
	GetActive(ctx context.Context, now time.Time) ([]entities.Advertisement, error)
}
