package product

import "storefront/internal/entities"

func ToDomain(p *ProductDB, variants []VariantDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    entities.CategoryType(p.Category),
		Images:      p.Images,
		Featured:    p.Featured,
		Variants:    ToVariantDomainList(variants),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToVariantDomain(v *VariantDB) *entities.Variant {
	if v == nil {
		return nil
	}
	return &entities.Variant{
		ID:              v.ID,
		ProductID:       v.ProductID,
		WeightLabel:     v.WeightLabel,
		Type:            v.Type,
		Packaging:       v.Packaging,
		Price:           v.Price,
		DiscountPercent: v.DiscountPercent,
		Stock:           v.Stock,
	}
}

func ToVariantDomainList(variants []VariantDB) []entities.Variant {
	if len(variants) == 0 {
		return []entities.Variant{}
	}

	result := make([]entities.Variant, len(variants))
	for i, variant := range variants {
		result[i] = *ToVariantDomain(&variant)
	}
	return result
}

func FromDomainModify(productModify *entities.ProductModify) *ProductModifyDB {
	if productModify == nil {
		return nil
	}
	productDB := &ProductModifyDB{}

	if productModify.ID != nil {
		productDB.ID = productModify.ID
	}
	if productModify.Name != nil {
		productDB.Name = productModify.Name
	}
	if productModify.Description != nil {
		productDB.Description = productModify.Description
	}
	if productModify.Category != nil {
		category := productModify.Category.String()
		productDB.Category = &category
	}
	if productModify.Images != nil {
		productDB.Images = productModify.Images
	}
	if productModify.Featured != nil {
		productDB.Featured = productModify.Featured
	}

	return productDB
}
