package coupon

import (
	"strings"
	"time"

	"storefront/internal/entities"
)

// Eligible решает, показывать ли купон в контексте категории.
// Пустой список категорий у купона и пустая категория запроса
// трактуются как "подходит всем".
func Eligible(c entities.Coupon, category string, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiryDate.Before(now) {
		return false
	}
	if len(c.ApplicableCategories) == 0 || category == "" {
		return true
	}
	return matchesCategory(c.ApplicableCategories, category)
}

// Filter возвращает подмножество купонов, пригодных к показу.
// Порядок результата не значим.
func Filter(coupons []entities.Coupon, category string, now time.Time) []entities.Coupon {
	eligible := make([]entities.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if Eligible(c, category, now) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

func matchesCategory(applicable []entities.CategoryType, category string) bool {
	for _, c := range applicable {
		if strings.EqualFold(c.String(), category) {
			return true
		}
	}
	return false
}

func matchesAnyCategory(applicable []entities.CategoryType, categories []entities.CategoryType) bool {
	if len(applicable) == 0 {
		return true
	}
	for _, category := range categories {
		if matchesCategory(applicable, category.String()) {
			return true
		}
	}
	return false
}

// DiscountAmount считает авторитетную скидку по подытогу.
// Скидка никогда не превышает подытог.
func DiscountAmount(c entities.Coupon, subtotal int64) int64 {
	var discount int64
	switch c.DiscountType {
	case entities.DiscountPercentage:
		discount = subtotal * c.DiscountValue / 100
	case entities.DiscountFlat:
		discount = c.DiscountValue
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
