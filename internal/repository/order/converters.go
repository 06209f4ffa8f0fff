package order

import "storefront/internal/entities"

func ToDomain(db OrderDB, items []OrderItemDB) *entities.Order {
	order := &entities.Order{
		ID:             db.ID,
		UserID:         db.UserID,
		Subtotal:       db.Subtotal,
		ShippingCharge: db.ShippingCharge,
		Discount:       db.Discount,
		TotalAmount:    db.TotalAmount,
		CouponCode:     db.CouponCode,
		Status:         entities.OrderStatusType(db.Status),
		PaymentType:    entities.PaymentType(db.PaymentType),
		PaymentStatus:  entities.PaymentStatusType(db.PaymentStatus),
		GatewayOrderID: db.GatewayOrderID,
		ShippingAddress: entities.Address{
			FullName:   db.ShipFullName,
			Phone:      db.ShipPhone,
			Line:       db.ShipLine,
			City:       db.ShipCity,
			State:      db.ShipState,
			PostalCode: db.ShipPostalCode,
		},
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			WeightLabel: item.WeightLabel,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return order
}

func FromDomain(order entities.Order) OrderDB {
	return OrderDB{
		ID:             order.ID,
		UserID:         order.UserID,
		Subtotal:       order.Subtotal,
		ShippingCharge: order.ShippingCharge,
		Discount:       order.Discount,
		TotalAmount:    order.TotalAmount,
		CouponCode:     order.CouponCode,
		Status:         order.Status.String(),
		PaymentType:    order.PaymentType.String(),
		PaymentStatus:  order.PaymentStatus.String(),
		GatewayOrderID: order.GatewayOrderID,
		ShipFullName:   order.ShippingAddress.FullName,
		ShipPhone:      order.ShippingAddress.Phone,
		ShipLine:       order.ShippingAddress.Line,
		ShipCity:       order.ShippingAddress.City,
		ShipState:      order.ShippingAddress.State,
		ShipPostalCode: order.ShippingAddress.PostalCode,
	}
}
