// Package dto содержит транспортные модели REST API.
// Все денежные суммы — целые рупии.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type Signup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type OTPSend struct {
	Email string `json:"email"`
}

type OTPVerify struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordReset struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type Address struct {
	ID         int64  `json:"id,omitempty"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Line       string `json:"line"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type Variant struct {
	ID              int64  `json:"id"`
	WeightLabel     string `json:"weight_label"`
	Type            string `json:"type,omitempty"`
	Packaging       string `json:"packaging,omitempty"`
	Price           int64  `json:"price"`
	DiscountPercent int32  `json:"discount_percent,omitempty"`
	Stock           int32  `json:"stock"`
}

type VariantCreate struct {
	ProductID       int64  `json:"product_id"`
	WeightLabel     string `json:"weight_label"`
	Type            string `json:"type,omitempty"`
	Packaging       string `json:"packaging,omitempty"`
	Price           int64  `json:"price"`
	DiscountPercent int32  `json:"discount_percent,omitempty"`
	Stock           int32  `json:"stock"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	Variants    []Variant `json:"variants"`
}

type ProductCreate struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Images      []string        `json:"images,omitempty"`
	Featured    *bool           `json:"featured,omitempty"`
	Variants    []VariantCreate `json:"variants"`
}

type ProductUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewCreate struct {
	Rating  int32    `json:"rating"`
	Comment string   `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

type CartItem struct {
	ProductID   int64  `json:"product_id"`
	VariantID   int64  `json:"variant_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
	WeightLabel string `json:"weight_label"`
	UnitPrice   int64  `json:"unit_price"`
	Stock       int32  `json:"stock"`
	Quantity    int32  `json:"quantity"`
	LineTotal   int64  `json:"line_total"`
}

type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
	Shipping int64      `json:"shipping"`
	Payable  int64      `json:"payable"`
}

type CartItemAdd struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int32 `json:"quantity"`
}

type CartItemUpdate struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int32 `json:"quantity"`
}

type Checkout struct {
	PaymentType     string  `json:"payment_type"`
	CouponCode      string  `json:"coupon_code,omitempty"`
	ShippingAddress Address `json:"shipping_address"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type OrderItem struct {
	ProductID   int64  `json:"product_id"`
	VariantID   int64  `json:"variant_id"`
	ProductName string `json:"product_name"`
	WeightLabel string `json:"weight_label"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int32  `json:"quantity"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          int64       `json:"user_id"`
	Items           []OrderItem `json:"items"`
	Subtotal        int64       `json:"subtotal"`
	ShippingCharge  int64       `json:"shipping_charge"`
	Discount        int64       `json:"discount"`
	TotalAmount     int64       `json:"total_amount"`
	CouponCode      string      `json:"coupon_code,omitempty"`
	Status          string      `json:"status"`
	PaymentType     string      `json:"payment_type"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress Address     `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
}

// AdminOrder — заказ для админской выдачи; next_statuses подсказывает
// фронтенду, какие переходы статуса сейчас допустимы.
type AdminOrder struct {
	Order
	NextStatuses []string `json:"next_statuses"`
}

type CheckoutResponse struct {
	Order        Order         `json:"order"`
	GatewayOrder *GatewayOrder `json:"gateway_order,omitempty"`
}

type PaymentVerify struct {
	GatewayOrderID string `json:"razorpay_order_id"`
	PaymentID      string `json:"razorpay_payment_id"`
	Signature      string `json:"razorpay_signature"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type Coupon struct {
	ID                   int64     `json:"id"`
	Code                 string    `json:"code"`
	DiscountType         string    `json:"discount_type"`
	DiscountValue        int64     `json:"discount_value"`
	MinPurchase          int64     `json:"min_purchase"`
	ExpiryDate           time.Time `json:"expiry_date"`
	IsActive             bool      `json:"is_active"`
	MaxUses              int32     `json:"max_uses"`
	UsedCount            int32     `json:"used_count"`
	OncePerUser          bool      `json:"once_per_user"`
	ApplicableCategories []string  `json:"applicable_categories"`
}

type CouponModify struct {
	Code                 *string    `json:"code,omitempty"`
	DiscountType         *string    `json:"discount_type,omitempty"`
	DiscountValue        *int64     `json:"discount_value,omitempty"`
	MinPurchase          *int64     `json:"min_purchase,omitempty"`
	ExpiryDate           *time.Time `json:"expiry_date,omitempty"`
	IsActive             *bool      `json:"is_active,omitempty"`
	MaxUses              *int32     `json:"max_uses,omitempty"`
	OncePerUser          *bool      `json:"once_per_user,omitempty"`
	ApplicableCategories *[]string  `json:"applicable_categories,omitempty"`
}

type CouponApply struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

type CouponApplyResponse struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
}

type Warehouse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type WarehouseModify struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
}

type Advertisement struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Images    []string   `json:"images"`
	Active    bool       `json:"active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type AdvertisementModify struct {
	Title     *string    `json:"title,omitempty"`
	Images    *[]string  `json:"images,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
