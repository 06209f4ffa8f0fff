package cart

import "storefront/internal/entities"

// Доставка: фикс ₹50 при подытоге ниже ₹500, иначе бесплатно.
// Константы конфигурации, не вычисляются.
const (
	FreeShippingThreshold int64 = 500
	ShippingFee           int64 = 50
)

// CanIncrement разрешает +1 только в пределах стока варианта.
func CanIncrement(quantity, stock int32) bool {
	return quantity+1 <= stock
}

// CanDecrement разрешает -1 только до единицы.
func CanDecrement(quantity int32) bool {
	return quantity-1 >= 1
}

func Subtotal(items []entities.CartItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

func ShippingCharge(subtotal int64) int64 {
	if subtotal == 0 {
		return 0
	}
	if subtotal < FreeShippingThreshold {
		return ShippingFee
	}
	return 0
}
