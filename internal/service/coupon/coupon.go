package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/entities"
)

type Coupon struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Coupon {
	return &Coupon{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Coupon) CreateCoupon(ctx context.Context, couponModify entities.CouponModify) (int64, error) {
	if couponModify.Code == nil ||
		couponModify.DiscountType == nil ||
		couponModify.DiscountValue == nil ||
		couponModify.ExpiryDate == nil {
		return 0, ErrMissingRequiredFields
	}

	if err := validateCouponFields(couponModify); err != nil {
		return 0, err
	}

	normalized := normalizeCode(*couponModify.Code)
	couponModify.Code = &normalized

	id, err := s.repository.Create(ctx, couponModify)
	if err != nil {
		return 0, fmt.Errorf("create coupon: %w", err)
	}
	return id, nil
}

func (s *Coupon) UpdateCoupon(ctx context.Context, couponModify entities.CouponModify) (*entities.Coupon, error) {
	if couponModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if couponModify.Code == nil &&
		couponModify.DiscountType == nil &&
		couponModify.DiscountValue == nil &&
		couponModify.MinPurchase == nil &&
		couponModify.ExpiryDate == nil &&
		couponModify.IsActive == nil &&
		couponModify.MaxUses == nil &&
		couponModify.OncePerUser == nil &&
		couponModify.ApplicableCategories == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateCouponFields(couponModify); err != nil {
		return nil, err
	}

	if couponModify.Code != nil {
		normalized := normalizeCode(*couponModify.Code)
		couponModify.Code = &normalized
	}

	updated, err := s.repository.Update(ctx, couponModify)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return updated, nil
}

func (s *Coupon) DeleteCoupon(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}

func (s *Coupon) GetCoupons(ctx context.Context) ([]entities.Coupon, error) {
	coupons, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coupons: %w", err)
	}
	return coupons, nil
}

// GetEligibleCoupons — витринная выборка для покупателя: активные,
// не истекшие, подходящие категории.
func (s *Coupon) GetEligibleCoupons(ctx context.Context, category string) ([]entities.Coupon, error) {
	coupons, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coupons: %w", err)
	}
	return Filter(coupons, category, time.Now().UTC()), nil
}

// Preview считает скидку для экрана чекаута без списания использования.
// Значение информационное: финальная скидка фиксируется в Redeem.
func (s *Coupon) Preview(ctx context.Context, userID int64, code string, subtotal int64) (int64, error) {
	couponEntity, err := s.lookup(ctx, code)
	if err != nil {
		return 0, err
	}
	if err := s.checkRedeemable(ctx, couponEntity, userID, subtotal); err != nil {
		return 0, err
	}
	return DiscountAmount(*couponEntity, subtotal), nil
}

// Redeem — авторитетное применение купона при оформлении заказа:
// все лимиты проверяются заново и использование списывается.
// Вызывается внутри транзакции оформления.
func (s *Coupon) Redeem(ctx context.Context, userID int64, code string, subtotal int64, categories []entities.CategoryType) (int64, error) {
	couponEntity, err := s.lookup(ctx, code)
	if err != nil {
		return 0, err
	}
	if err := s.checkRedeemable(ctx, couponEntity, userID, subtotal); err != nil {
		return 0, err
	}
	if !matchesAnyCategory(couponEntity.ApplicableCategories, categories) {
		return 0, ErrCategoryMismatch
	}

	discount := DiscountAmount(*couponEntity, subtotal)

	if err := s.repository.IncrementUsage(ctx, couponEntity.ID); err != nil {
		return 0, fmt.Errorf("increment coupon usage: %w", err)
	}
	if err := s.repository.RecordRedemption(ctx, couponEntity.ID, userID, discount); err != nil {
		return 0, fmt.Errorf("record redemption: %w", err)
	}
	return discount, nil
}

// DeactivateExpired гасит просроченные купоны; вызывается фоновой задачей.
func (s *Coupon) DeactivateExpired(ctx context.Context) (int64, error) {
	deactivated, err := s.repository.DeactivateExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired coupons: %w", err)
	}
	return deactivated, nil
}

func (s *Coupon) lookup(ctx context.Context, code string) (*entities.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrInvalidCode
	}

	couponEntity, err := s.repository.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}
	return couponEntity, nil
}

func (s *Coupon) checkRedeemable(ctx context.Context, couponEntity *entities.Coupon, userID int64, subtotal int64) error {
	if !couponEntity.IsActive {
		return ErrCouponInactive
	}
	if couponEntity.ExpiryDate.Before(time.Now().UTC()) {
		return ErrCouponExpired
	}
	if subtotal < couponEntity.MinPurchase {
		return ErrMinPurchaseNotMet
	}
	if couponEntity.MaxUses > 0 && couponEntity.UsedCount >= couponEntity.MaxUses {
		return ErrUsageLimitExceeded
	}

	if couponEntity.OncePerUser {
		redeemed, err := s.repository.HasRedemption(ctx, couponEntity.ID, userID)
		if err != nil {
			return fmt.Errorf("check redemption: %w", err)
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
