package coupon

import "storefront/internal/entities"

func ToDomain(db CouponDB) *entities.Coupon {
	categories := make([]entities.CategoryType, 0, len(db.ApplicableCategories))
	for _, c := range db.ApplicableCategories {
		categories = append(categories, entities.CategoryType(c))
	}
	return &entities.Coupon{
		ID:                   db.ID,
		Code:                 db.Code,
		DiscountType:         entities.DiscountType(db.DiscountType),
		DiscountValue:        db.DiscountValue,
		MinPurchase:          db.MinPurchase,
		ExpiryDate:           db.ExpiryDate,
		IsActive:             db.IsActive,
		MaxUses:              db.MaxUses,
		UsedCount:            db.UsedCount,
		OncePerUser:          db.OncePerUser,
		ApplicableCategories: categories,
		CreatedAt:            db.CreatedAt,
	}
}

func FromDomainModify(modify *entities.CouponModify) CouponModifyDB {
	model := CouponModifyDB{
		ID:            modify.ID,
		Code:          modify.Code,
		DiscountValue: modify.DiscountValue,
		MinPurchase:   modify.MinPurchase,
		ExpiryDate:    modify.ExpiryDate,
		IsActive:      modify.IsActive,
		MaxUses:       modify.MaxUses,
		OncePerUser:   modify.OncePerUser,
	}
	if modify.DiscountType != nil {
		discountType := modify.DiscountType.String()
		model.DiscountType = &discountType
	}
	if modify.ApplicableCategories != nil {
		categories := make([]string, 0, len(*modify.ApplicableCategories))
		for _, c := range *modify.ApplicableCategories {
			categories = append(categories, c.String())
		}
		model.ApplicableCategories = &categories
	}
	return model
}
