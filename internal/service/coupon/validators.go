package coupon

import (
	"strings"

	"storefront/internal/entities"
)

func validateCouponFields(couponModify entities.CouponModify) error {
	if couponModify.Code != nil && strings.TrimSpace(*couponModify.Code) == "" {
		return ErrInvalidCode
	}
	if couponModify.DiscountType != nil && !isValidDiscountType(*couponModify.DiscountType) {
		return ErrInvalidDiscountType
	}
	if couponModify.DiscountValue != nil {
		if *couponModify.DiscountValue <= 0 {
			return ErrInvalidDiscountValue
		}
		// процентная скидка в (0,100]
		if couponModify.DiscountType != nil &&
			*couponModify.DiscountType == entities.DiscountPercentage &&
			*couponModify.DiscountValue > 100 {
			return ErrInvalidDiscountValue
		}
	}
	if couponModify.ExpiryDate != nil && couponModify.ExpiryDate.IsZero() {
		return ErrInvalidExpiryDate
	}
	if couponModify.ApplicableCategories != nil {
		for _, category := range *couponModify.ApplicableCategories {
			if !isValidCategory(category) {
				return ErrInvalidCategory
			}
		}
	}
	return nil
}

func isValidDiscountType(discountType entities.DiscountType) bool {
	switch discountType {
	case entities.DiscountPercentage, entities.DiscountFlat:
		return true
	default:
		return false
	}
}

func isValidCategory(category entities.CategoryType) bool {
	switch category {
	case entities.CategoryHoney,
		entities.CategoryDryFruits,
		entities.CategoryNutsSeeds,
		entities.CategorySpices,
		entities.CategoryOther:
		return true
	default:
		return false
	}
}
