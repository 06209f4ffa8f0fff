package order

import "time"

type OrderDB struct {
	ID             string    `db:"id"`
	UserID         int64     `db:"user_id"`
	Subtotal       int64     `db:"subtotal"`
	ShippingCharge int64     `db:"shipping_charge"`
	Discount       int64     `db:"discount"`
	TotalAmount    int64     `db:"total_amount"`
	CouponCode     string    `db:"coupon_code"`
	Status         string    `db:"status"`
	PaymentType    string    `db:"payment_type"`
	PaymentStatus  string    `db:"payment_status"`
	GatewayOrderID string    `db:"gateway_order_id"`
	ShipFullName   string    `db:"ship_full_name"`
	ShipPhone      string    `db:"ship_phone"`
	ShipLine       string    `db:"ship_line"`
	ShipCity       string    `db:"ship_city"`
	ShipState      string    `db:"ship_state"`
	ShipPostalCode string    `db:"ship_postal_code"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type OrderItemDB struct {
	OrderID     string `db:"order_id"`
	ProductID   int64  `db:"product_id"`
	VariantID   int64  `db:"variant_id"`
	ProductName string `db:"product_name"`
	WeightLabel string `db:"weight_label"`
	UnitPrice   int64  `db:"unit_price"`
	Quantity    int32  `db:"quantity"`
}
