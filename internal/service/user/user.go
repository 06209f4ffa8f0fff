package user

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	profile, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return profile, nil
}

func (s *User) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

func (s *User) UpdateProfile(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if userModify.Name == nil && userModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if userModify.Name != nil && strings.TrimSpace(*userModify.Name) == "" {
		return nil, ErrMissingRequiredFields
	}
	if userModify.Phone != nil && !isDigits(*userModify.Phone, 10) {
		return nil, ErrInvalidPhone
	}

	updated, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *User) GetAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	addresses, err := s.repository.GetAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get addresses: %w", err)
	}
	return addresses, nil
}

func (s *User) AddAddress(ctx context.Context, address entities.Address) (int64, error) {
	if address.UserID == 0 ||
		strings.TrimSpace(address.FullName) == "" ||
		strings.TrimSpace(address.Line) == "" ||
		strings.TrimSpace(address.City) == "" ||
		strings.TrimSpace(address.State) == "" {
		return 0, ErrMissingRequiredFields
	}
	if !isDigits(address.Phone, 10) {
		return 0, ErrInvalidPhone
	}
	if !isDigits(address.PostalCode, 6) {
		return 0, ErrInvalidPostalCode
	}

	id, err := s.repository.AddAddress(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("add address: %w", err)
	}
	return id, nil
}

func (s *User) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if err := s.repository.DeleteAddress(ctx, userID, addressID); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
