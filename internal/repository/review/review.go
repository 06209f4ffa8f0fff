package review

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, review entities.Review) (int64, error) {
	query := `
	INSERT INTO reviews (product_id, user_id, rating, comment, images)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.Images,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return id, nil
}

// GetByProduct подтягивает имя автора join-ом, оно не дублируется в отзыве.
func (r *Repository) GetByProduct(ctx context.Context, productID int64) ([]entities.Review, error) {
	query := `
	SELECT rv.id, rv.product_id, rv.user_id, u.name, rv.rating, rv.comment, rv.images, rv.created_at
	FROM reviews rv
	JOIN users u ON u.id = rv.user_id
	WHERE rv.product_id = $1
	ORDER BY rv.created_at DESC`

	rows, err := r.querier.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getbyproduct error: %w", err)
	}
	defer rows.Close()

	reviews := make([]entities.Review, 0, 4)
	for rows.Next() {
		var review entities.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.UserName,
			&review.Rating,
			&review.Comment,
			&review.Images,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository getbyproduct error: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected review repository getbyproduct error: %w", err)
	}

	return reviews, nil
}
