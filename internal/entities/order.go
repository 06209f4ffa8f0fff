package entities

import "time"

type Order struct {
	ID              string
	UserID          int64
	Items           []OrderItem
	Subtotal        int64
	ShippingCharge  int64
	Discount        int64
	TotalAmount     int64
	CouponCode      string
	Status          OrderStatusType
	PaymentType     PaymentType
	PaymentStatus   PaymentStatusType
	GatewayOrderID  string
	ShippingAddress Address
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem — снапшот позиции на момент оформления: цена и названия
// фиксируются и не меняются при последующих правках каталога.
type OrderItem struct {
	ProductID   int64
	VariantID   int64
	ProductName string
	WeightLabel string
	UnitPrice   int64
	Quantity    int32
}

type OrderStatusType string

const (
	OrderPlaced     OrderStatusType = "Placed"
	OrderProcessing OrderStatusType = "Processing"
	OrderShipped    OrderStatusType = "Shipped"
	OrderDelivered  OrderStatusType = "Delivered"
	OrderCancelled  OrderStatusType = "Cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentType string

const (
	PaymentCOD      PaymentType = "COD"
	PaymentRazorpay PaymentType = "RAZORPAY"
)

func (p PaymentType) String() string {
	return string(p)
}

type PaymentStatusType string

const (
	PaymentPending PaymentStatusType = "pending"
	PaymentPaid    PaymentStatusType = "paid"
	PaymentFailed  PaymentStatusType = "failed"
)

func (p PaymentStatusType) String() string {
	return string(p)
}
