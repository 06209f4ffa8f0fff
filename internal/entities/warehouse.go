package entities

import "time"

// Warehouse — пункт самовывоза.
type Warehouse struct {
	ID        int64
	Name      string
	Phone     string
	Address   string
	City      string
	State     string
	Pincode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WarehouseModify struct {
	ID      *int64
	Name    *string
	Phone   *string
	Address *string
	City    *string
	State   *string
	Pincode *string
}
