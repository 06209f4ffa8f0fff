package entities

type Cart struct {
	UserID   int64
	Items    []CartItem
	Subtotal int64
	Shipping int64
	Payable  int64
}

type CartItem struct {
	ProductID   int64
	VariantID   int64
	ProductName string
	Category    CategoryType
	Image       string
	WeightLabel string
	UnitPrice   int64
	Stock       int32
	Quantity    int32
}

// LineTotal — сумма позиции. Цена берется из снапшота корзины,
// клиентские пересчеты не принимаются.
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
