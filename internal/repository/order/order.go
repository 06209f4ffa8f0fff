package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	orderservice "storefront/internal/service/order"
)

const orderColumns = `id, user_id, subtotal, shipping_charge, discount, total_amount,
	       COALESCE(coupon_code, ''), status, payment_type, payment_status,
	       COALESCE(gateway_order_id, ''), ship_full_name, ship_phone, ship_line,
	       ship_city, ship_state, ship_postal_code, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, order entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(order)

	query := `
	INSERT INTO orders (id, user_id, subtotal, shipping_charge, discount, total_amount,
	                    coupon_code, status, payment_type, payment_status, gateway_order_id,
	                    ship_full_name, ship_phone, ship_line, ship_city, ship_state, ship_postal_code)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''),
	        $12, $13, $14, $15, $16, $17)
	RETURNING created_at, updated_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.UserID,
		orderModel.Subtotal,
		orderModel.ShippingCharge,
		orderModel.Discount,
		orderModel.TotalAmount,
		orderModel.CouponCode,
		orderModel.Status,
		orderModel.PaymentType,
		orderModel.PaymentStatus,
		orderModel.GatewayOrderID,
		orderModel.ShipFullName,
		orderModel.ShipPhone,
		orderModel.ShipLine,
		orderModel.ShipCity,
		orderModel.ShipState,
		orderModel.ShipPostalCode,
	).Scan(&orderModel.CreatedAt, &orderModel.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `
	INSERT INTO order_items (order_id, product_id, variant_id, product_name, weight_label, unit_price, quantity)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	items := make([]OrderItemDB, 0, len(order.Items))
	for _, item := range order.Items {
		_, err := r.querier.Exec(
			ctx,
			itemQuery,
			orderModel.ID,
			item.ProductID,
			item.VariantID,
			item.ProductName,
			item.WeightLabel,
			item.UnitPrice,
			item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create error: %w", err)
		}
		items = append(items, OrderItemDB{
			OrderID:     orderModel.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			WeightLabel: item.WeightLabel,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return ToDomain(orderModel, items), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE gateway_order_id = $1`
	return r.getOne(ctx, query, gatewayOrderID)
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.getList(ctx, query, userID)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.getList(ctx, query)
}

// UpdateStatus меняет статус условно, только из ожидаемого from.
// Параллельный перевод того же заказа не пройдет по новому from.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), orderID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return orderservice.ErrInvalidTransition
	}
	return nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatusType) error {
	query := `UPDATE orders SET payment_status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, status.String(), orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository updatepaymentstatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Order, error) {
	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&orderModel.ID,
		&orderModel.UserID,
		&orderModel.Subtotal,
		&orderModel.ShippingCharge,
		&orderModel.Discount,
		&orderModel.TotalAmount,
		&orderModel.CouponCode,
		&orderModel.Status,
		&orderModel.PaymentType,
		&orderModel.PaymentStatus,
		&orderModel.GatewayOrderID,
		&orderModel.ShipFullName,
		&orderModel.ShipPhone,
		&orderModel.ShipLine,
		&orderModel.ShipCity,
		&orderModel.ShipState,
		&orderModel.ShipPostalCode,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.getItems(ctx, orderModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(orderModel, items), nil
}

func (r *Repository) getList(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getlist error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.Subtotal,
			&orderModel.ShippingCharge,
			&orderModel.Discount,
			&orderModel.TotalAmount,
			&orderModel.CouponCode,
			&orderModel.Status,
			&orderModel.PaymentType,
			&orderModel.PaymentStatus,
			&orderModel.GatewayOrderID,
			&orderModel.ShipFullName,
			&orderModel.ShipPhone,
			&orderModel.ShipLine,
			&orderModel.ShipCity,
			&orderModel.ShipState,
			&orderModel.ShipPostalCode,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getlist error: %w", err)
		}

		items, err := r.getItems(ctx, orderModel.ID)
		if err != nil {
			return nil, err
		}

		orders = append(orders, *ToDomain(orderModel, items))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getlist error: %w", err)
	}

	return orders, nil
}

func (r *Repository) getItems(ctx context.Context, orderID string) ([]OrderItemDB, error) {
	query := `
	SELECT order_id, product_id, variant_id, product_name, weight_label, unit_price, quantity
	FROM order_items
	WHERE order_id = $1
	ORDER BY product_id, variant_id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.WeightLabel,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
	}

	return items, nil
}
