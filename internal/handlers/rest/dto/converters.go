package dto

import "storefront/internal/entities"

func FromUser(user entities.User) User {
	return User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role.String(),
	}
}

func FromAddress(address entities.Address) Address {
	return Address{
		ID:         address.ID,
		FullName:   address.FullName,
		Phone:      address.Phone,
		Line:       address.Line,
		City:       address.City,
		State:      address.State,
		PostalCode: address.PostalCode,
	}
}

func FromProduct(product entities.Product) Product {
	variants := make([]Variant, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, Variant{
			ID:              v.ID,
			WeightLabel:     v.WeightLabel,
			Type:            v.Type,
			Packaging:       v.Packaging,
			Price:           v.Price,
			DiscountPercent: v.DiscountPercent,
			Stock:           v.Stock,
		})
	}
	return Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category.String(),
		Images:      product.Images,
		Featured:    product.Featured,
		Variants:    variants,
	}
}

func FromCart(cart entities.Cart) Cart {
	items := make([]CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Category:    item.Category.String(),
			Image:       item.Image,
			WeightLabel: item.WeightLabel,
			UnitPrice:   item.UnitPrice,
			Stock:       item.Stock,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal(),
		})
	}
	return Cart{
		Items:    items,
		Subtotal: cart.Subtotal,
		Shipping: cart.Shipping,
		Payable:  cart.Payable,
	}
}

func FromOrder(order entities.Order) Order {
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			WeightLabel: item.WeightLabel,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return Order{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		Subtotal:        order.Subtotal,
		ShippingCharge:  order.ShippingCharge,
		Discount:        order.Discount,
		TotalAmount:     order.TotalAmount,
		CouponCode:      order.CouponCode,
		Status:          order.Status.String(),
		PaymentType:     order.PaymentType.String(),
		PaymentStatus:   order.PaymentStatus.String(),
		ShippingAddress: FromAddress(order.ShippingAddress),
		CreatedAt:       order.CreatedAt,
	}
}

func FromAdminOrder(order entities.Order, next []entities.OrderStatusType) AdminOrder {
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, s.String())
	}
	return AdminOrder{
		Order:        FromOrder(order),
		NextStatuses: nextStatuses,
	}
}

func FromCoupon(coupon entities.Coupon) Coupon {
	categories := make([]string, 0, len(coupon.ApplicableCategories))
	for _, c := range coupon.ApplicableCategories {
		categories = append(categories, c.String())
	}
	return Coupon{
		ID:                   coupon.ID,
		Code:                 coupon.Code,
		DiscountType:         coupon.DiscountType.String(),
		DiscountValue:        coupon.DiscountValue,
		MinPurchase:          coupon.MinPurchase,
		ExpiryDate:           coupon.ExpiryDate,
		IsActive:             coupon.IsActive,
		MaxUses:              coupon.MaxUses,
		UsedCount:            coupon.UsedCount,
		OncePerUser:          coupon.OncePerUser,
		ApplicableCategories: categories,
	}
}

func ToCouponModify(modify CouponModify) entities.CouponModify {
	couponModify := entities.CouponModify{
		Code:          modify.Code,
		DiscountValue: modify.DiscountValue,
		MinPurchase:   modify.MinPurchase,
		ExpiryDate:    modify.ExpiryDate,
		IsActive:      modify.IsActive,
		MaxUses:       modify.MaxUses,
		OncePerUser:   modify.OncePerUser,
	}
	if modify.DiscountType != nil {
		discountType := entities.DiscountType(*modify.DiscountType)
		couponModify.DiscountType = &discountType
	}
	if modify.ApplicableCategories != nil {
		categories := make([]entities.CategoryType, 0, len(*modify.ApplicableCategories))
		for _, c := range *modify.ApplicableCategories {
			categories = append(categories, entities.CategoryType(c))
		}
		couponModify.ApplicableCategories = &categories
	}
	return couponModify
}

func FromReview(review entities.Review) Review {
	return Review{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Images:    review.Images,
		CreatedAt: review.CreatedAt,
	}
}

func FromWarehouse(warehouse entities.Warehouse) Warehouse {
	return Warehouse{
		ID:      warehouse.ID,
		Name:    warehouse.Name,
		Phone:   warehouse.Phone,
		Address: warehouse.Address,
		City:    warehouse.City,
		State:   warehouse.State,
		Pincode: warehouse.Pincode,
	}
}

func ToWarehouseModify(modify WarehouseModify) entities.WarehouseModify {
	return entities.WarehouseModify{
		Name:    modify.Name,
		Phone:   modify.Phone,
		Address: modify.Address,
		City:    modify.City,
		State:   modify.State,
		Pincode: modify.Pincode,
	}
}

func ToAdvertisementModify(modify AdvertisementModify) entities.AdvertisementModify {
	return entities.AdvertisementModify{
		Title:     modify.Title,
		Images:    modify.Images,
		Active:    modify.Active,
		StartDate: modify.StartDate,
		EndDate:   modify.EndDate,
	}
}

func FromAdvertisement(ad entities.Advertisement) Advertisement {
	return Advertisement{
		ID:        ad.ID,
		Title:     ad.Title,
		Images:    ad.Images,
		Active:    ad.Active,
		StartDate: ad.StartDate,
		EndDate:   ad.EndDate,
	}
}
