package product

import "time"

type ProductDB struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Images      []string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductModifyDB struct {
	ID          *int64
	Name        *string
	Description *string
	Category    *string
	Images      *[]string
	Featured    *bool
}

type VariantDB struct {
	ID              int64
	ProductID       int64
	WeightLabel     string
	Type            string
	Packaging       string
	Price           int64
	DiscountPercent int32
	Stock           int32
}
