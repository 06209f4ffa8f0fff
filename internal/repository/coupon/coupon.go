package coupon

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	couponservice "storefront/internal/service/coupon"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const couponColumns = `id, code, discount_type, discount_value, min_purchase, expiry_date,
	       is_active, max_uses, used_count, once_per_user, applicable_categories, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, couponModify entities.CouponModify) (int64, error) {
	model := FromDomainModify(&couponModify)

	query := `
	INSERT INTO coupons (code, discount_type, discount_value, min_purchase, expiry_date,
	                     is_active, max_uses, once_per_user, applicable_categories)
	VALUES ($1, $2, $3, COALESCE($4, 0), $5, COALESCE($6, true), COALESCE($7, 0),
	        COALESCE($8, false), COALESCE($9, '{}'))
	RETURNING id`

	var categories []string
	if model.ApplicableCategories != nil {
		categories = *model.ApplicableCategories
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		model.Code,
		model.DiscountType,
		model.DiscountValue,
		model.MinPurchase,
		model.ExpiryDate,
		model.IsActive,
		model.MaxUses,
		model.OncePerUser,
		categories,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, couponservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected coupon repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, couponModify entities.CouponModify) (*entities.Coupon, error) {
	model := FromDomainModify(&couponModify)

	builder := qb.Update("coupons")

	if model.Code != nil {
		builder = builder.Set("code", model.Code)
	}
	if model.DiscountType != nil {
		builder = builder.Set("discount_type", model.DiscountType)
	}
	if model.DiscountValue != nil {
		builder = builder.Set("discount_value", model.DiscountValue)
	}
	if model.MinPurchase != nil {
		builder = builder.Set("min_purchase", model.MinPurchase)
	}
	if model.ExpiryDate != nil {
		builder = builder.Set("expiry_date", model.ExpiryDate)
	}
	if model.IsActive != nil {
		builder = builder.Set("is_active", model.IsActive)
	}
	if model.MaxUses != nil {
		builder = builder.Set("max_uses", model.MaxUses)
	}
	if model.OncePerUser != nil {
		builder = builder.Set("once_per_user", model.OncePerUser)
	}
	if model.ApplicableCategories != nil {
		builder = builder.Set("applicable_categories", *model.ApplicableCategories)
	}

	builder = builder.
		Where(sq.Eq{"id": model.ID}).
		Suffix("RETURNING " + couponColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected coupon repository update error: %w", err)
	}

	couponModel, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couponservice.ErrCouponNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, couponservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected coupon repository update error: %w", err)
	}

	return ToDomain(couponModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected coupon repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return couponservice.ErrCouponNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	couponModel, err := r.scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couponservice.ErrCouponNotFound
		}
		return nil, fmt.Errorf("unexpected coupon repository getbyid error: %w", err)
	}

	return ToDomain(couponModel), nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	couponModel, err := r.scanOne(r.querier.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couponservice.ErrCouponNotFound
		}
		return nil, fmt.Errorf("unexpected coupon repository getbycode error: %w", err)
	}

	return ToDomain(couponModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected coupon repository getall error: %w", err)
	}
	defer rows.Close()

	coupons := make([]entities.Coupon, 0, 8)
	for rows.Next() {
		couponModel, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected coupon repository getall error: %w", err)
		}
		coupons = append(coupons, *ToDomain(couponModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected coupon repository getall error: %w", err)
	}

	return coupons, nil
}

// IncrementUsage увеличивает счетчик с запретом выхода за max_uses,
// 0 в max_uses означает без лимита.
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	query := `
	UPDATE coupons
	SET used_count = used_count + 1
	WHERE id = $1 AND (max_uses = 0 OR used_count < max_uses)`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected coupon repository incrementusage error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return couponservice.ErrUsageLimitExceeded
	}
	return nil
}

func (r *Repository) HasRedemption(ctx context.Context, couponID, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM coupon_redemptions WHERE coupon_id = $1 AND user_id = $2)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, couponID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected coupon repository hasredemption error: %w", err)
	}
	return exists, nil
}

func (r *Repository) RecordRedemption(ctx context.Context, couponID, userID int64, discount int64) error {
	query := `INSERT INTO coupon_redemptions (coupon_id, user_id, discount) VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, couponID, userID, discount)
	if err != nil {
		return fmt.Errorf("unexpected coupon repository recordredemption error: %w", err)
	}
	return nil
}

func (r *Repository) DeactivateExpired(ctx context.Context) (int64, error) {
	query := `UPDATE coupons SET is_active = false WHERE is_active = true AND expiry_date < NOW()`

	tag, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected coupon repository deactivateexpired error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) scanOne(row pgx.Row) (CouponDB, error) {
	var model CouponDB
	err := row.Scan(
		&model.ID,
		&model.Code,
		&model.DiscountType,
		&model.DiscountValue,
		&model.MinPurchase,
		&model.ExpiryDate,
		&model.IsActive,
		&model.MaxUses,
		&model.UsedCount,
		&model.OncePerUser,
		&model.ApplicableCategories,
		&model.CreatedAt,
	)
	return model, err
}
