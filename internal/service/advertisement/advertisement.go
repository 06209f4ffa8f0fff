package advertisement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/entities"
)

type Advertisement struct {
	repository Repository
}

func New(repository Repository) *Advertisement {
	return &Advertisement{
		repository: repository,
	}
}

func (s *Advertisement) CreateAdvertisement(ctx context.Context, adModify entities.AdvertisementModify) (int64, error) {
	if adModify.Title == nil || adModify.Images == nil || len(*adModify.Images) == 0 {
		return 0, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*adModify.Title) == "" {
		return 0, ErrInvalidTitle
	}
	if err := validateWindow(adModify.StartDate, adModify.EndDate); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, adModify)
	if err != nil {
		return 0, fmt.Errorf("create advertisement: %w", err)
	}
	return id, nil
}

func (s *Advertisement) UpdateAdvertisement(ctx context.Context, adModify entities.AdvertisementModify) (*entities.Advertisement, error) {
	if adModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if adModify.Title == nil &&
		adModify.Images == nil &&
		adModify.Active == nil &&
		adModify.StartDate == nil &&
		adModify.EndDate == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if adModify.Title != nil && strings.TrimSpace(*adModify.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if err := validateWindow(adModify.StartDate, adModify.EndDate); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, adModify)
	if err != nil {
		return nil, fmt.Errorf("update advertisement: %w", err)
	}
	return updated, nil
}

func (s *Advertisement) DeleteAdvertisement(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete advertisement: %w", err)
	}
	return nil
}

func (s *Advertisement) GetAdvertisements(ctx context.Context) ([]entities.Advertisement, error) {
	ads, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get advertisements: %w", err)
	}
	return ads, nil
}

// GetActiveAdvertisements — публичная выборка: активные и попадающие
// в датируемое окно, если оно задано.
func (s *Advertisement) GetActiveAdvertisements(ctx context.Context) ([]entities.Advertisement, error) {
	ads, err := s.repository.GetActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get active advertisements: %w", err)
	}
	return ads, nil
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return ErrInvalidDateWindow
	}
	return nil
}
