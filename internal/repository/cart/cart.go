package cart

import (
	"context"
	"fmt"

	"storefront/internal/entities"
	cartservice "storefront/internal/service/cart"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetItems отдает позиции корзины со свежими каталожными полями:
// имя, категория, картинка и сток подтягиваются join-ом, а не хранятся.
func (r *Repository) GetItems(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	query := `
	SELECT ci.product_id,
	       ci.variant_id,
	       p.name,
	       p.category,
	       COALESCE(p.images[1], ''),
	       v.weight_label,
	       ci.unit_price,
	       v.stock,
	       ci.quantity
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	JOIN variants v ON v.id = ci.variant_id
	WHERE ci.user_id = $1
	ORDER BY ci.added_at`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository getitems error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.CartItem, 0, 4)
	for rows.Next() {
		var item entities.CartItem
		var category string
		err := rows.Scan(
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&category,
			&item.Image,
			&item.WeightLabel,
			&item.UnitPrice,
			&item.Stock,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cart repository getitems error: %w", err)
		}
		item.Category = entities.CategoryType(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cart repository getitems error: %w", err)
	}

	return items, nil
}

func (r *Repository) UpsertItem(ctx context.Context, userID, productID, variantID int64, quantity int32, unitPrice int64) error {
	query := `
	INSERT INTO cart_items (user_id, product_id, variant_id, quantity, unit_price)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, product_id, variant_id)
	DO UPDATE SET quantity = EXCLUDED.quantity, unit_price = EXCLUDED.unit_price`

	_, err := r.querier.Exec(ctx, query, userID, productID, variantID, quantity, unitPrice)
	if err != nil {
		return fmt.Errorf("unexpected cart repository upsertitem error: %w", err)
	}
	return nil
}

func (r *Repository) UpdateQuantity(ctx context.Context, userID, productID, variantID int64, quantity int32) error {
	query := `
	UPDATE cart_items
	SET quantity = $1
	WHERE user_id = $2 AND product_id = $3 AND variant_id = $4`

	tag, err := r.querier.Exec(ctx, query, quantity, userID, productID, variantID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository updatequantity error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cartservice.ErrItemNotFound
	}
	return nil
}

func (r *Repository) RemoveItem(ctx context.Context, userID, productID, variantID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2 AND variant_id = $3`

	tag, err := r.querier.Exec(ctx, query, userID, productID, variantID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository removeitem error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cartservice.ErrItemNotFound
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, userID int64) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository clear error: %w", err)
	}
	return nil
}
