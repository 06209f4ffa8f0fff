package entities

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    CategoryType
	Images      []string
	Featured    bool
	Variants    []Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant — покупаемая конфигурация продукта (SKU): своя цена и свой сток.
type Variant struct {
	ID              int64
	ProductID       int64
	WeightLabel     string
	Type            string
	Packaging       string
	Price           int64
	DiscountPercent int32
	Stock           int32
}

type CategoryType string

const (
	CategoryHoney     CategoryType = "honey"
	CategoryDryFruits CategoryType = "dry-fruits"
	CategoryNutsSeeds CategoryType = "nuts-seeds"
	CategorySpices    CategoryType = "spices"
	CategoryOther     CategoryType = "other"
)

func (c CategoryType) String() string {
	return string(c)
}

type ProductModify struct {
	ID          *int64
	Name        *string
	Description *string
	Category    *CategoryType
	Images      *[]string
	Featured    *bool
}

type VariantModify struct {
	ID              *int64
	ProductID       *int64
	WeightLabel     *string
	Type            *string
	Packaging       *string
	Price           *int64
	DiscountPercent *int32
	Stock           *int32
}
