package catalog

import (
	"strings"

	"storefront/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
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

func validateVariant(variantModify entities.VariantModify) error {
	if variantModify.Price == nil || variantModify.Stock == nil {
		return ErrMissingRequiredFields
	}
	if *variantModify.Price <= 0 {
		return ErrInvalidPrice
	}
	if *variantModify.Stock < 0 {
		return ErrInvalidStock
	}
	if variantModify.DiscountPercent != nil &&
		(*variantModify.DiscountPercent < 0 || *variantModify.DiscountPercent > 100) {
		return ErrInvalidDiscount
	}
	return nil
}
