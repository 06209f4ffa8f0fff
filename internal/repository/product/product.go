package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/catalog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify, variants []entities.VariantModify) (int64, error) {
	productModifyModel := FromDomainModify(&productModify)

	query := `INSERT INTO products (name, description, category, images, featured)
		VALUES ($1, $2, $3, $4, COALESCE($5, false))
		RETURNING id`

	var images []string
	if productModifyModel.Images != nil {
		images = *productModifyModel.Images
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		productModifyModel.Name,
		productModifyModel.Description,
		productModifyModel.Category,
		images,
		productModifyModel.Featured,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, catalog.ErrConflict
		}
		return 0, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	for _, variant := range variants {
		variant.ProductID = &id
		if _, err := r.AddVariant(ctx, variant); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModify)

	builder := qb.Update("products")

	if productModifyModel.Name != nil {
		builder = builder.Set("name", productModifyModel.Name)
	}
	if productModifyModel.Description != nil {
		builder = builder.Set("description", productModifyModel.Description)
	}
	if productModifyModel.Category != nil {
		builder = builder.Set("category", productModifyModel.Category)
	}
	if productModifyModel.Images != nil {
		builder = builder.Set("images", *productModifyModel.Images)
	}
	if productModifyModel.Featured != nil {
		builder = builder.Set("featured", productModifyModel.Featured)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": productModifyModel.ID}).
		Suffix("RETURNING id, name, description, category, images, featured, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	var productModel ProductDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Category,
			&productModel.Images,
			&productModel.Featured,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	variants, err := r.getVariantsByProduct(ctx, productModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&productModel, variants), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected product repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT id, name, description, category, images, featured, created_at, updated_at
		FROM products
		WHERE id = $1`

	var productModel ProductDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Category,
			&productModel.Images,
			&productModel.Featured,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	variants, err := r.getVariantsByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&productModel, variants), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Product, error) {
	return r.getList(ctx, qb.
		Select("id", "name", "description", "category", "images", "featured", "created_at", "updated_at").
		From("products").
		OrderBy("id"))
}

func (r *Repository) GetByCategory(ctx context.Context, category entities.CategoryType) ([]entities.Product, error) {
	return r.getList(ctx, qb.
		Select("id", "name", "description", "category", "images", "featured", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"category": category.String()}).
		OrderBy("id"))
}

func (r *Repository) AddVariant(ctx context.Context, variantModify entities.VariantModify) (int64, error) {
	query := `INSERT INTO variants (product_id, weight_label, type, packaging, price, discount_percent, stock)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, ''), $5, COALESCE($6, 0), $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		variantModify.ProductID,
		variantModify.WeightLabel,
		variantModify.Type,
		variantModify.Packaging,
		variantModify.Price,
		variantModify.DiscountPercent,
		variantModify.Stock,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, catalog.ErrConflict
		}
		return 0, fmt.Errorf("unexpected product repository addvariant error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetVariant(ctx context.Context, variantID int64) (*entities.Variant, error) {
	query := `SELECT id, product_id, weight_label, type, packaging, price, discount_percent, stock
		FROM variants
		WHERE id = $1`

	var variantModel VariantDB
	err := r.querier.QueryRow(ctx, query, variantID).
		Scan(
			&variantModel.ID,
			&variantModel.ProductID,
			&variantModel.WeightLabel,
			&variantModel.Type,
			&variantModel.Packaging,
			&variantModel.Price,
			&variantModel.DiscountPercent,
			&variantModel.Stock,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrVariantNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getvariant error: %w", err)
	}

	return ToVariantDomain(&variantModel), nil
}

// AdjustStock меняет сток атомарно; CHECK (stock >= 0) в схеме
// превращает уход в минус в ErrInsufficientStock.
func (r *Repository) AdjustStock(ctx context.Context, variantID int64, delta int32) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE variants SET stock = stock + $1 WHERE id = $2`,
		delta, variantID,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return catalog.ErrInsufficientStock
		}
		return fmt.Errorf("unexpected product repository adjuststock error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrVariantNotFound
	}
	return nil
}

func (r *Repository) getList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Product, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getlist error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getlist error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 8)
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Category,
			&productModel.Images,
			&productModel.Featured,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getlist error: %w", err)
		}
		productModels = append(productModels, productModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getlist error: %w", err)
	}

	result := make([]entities.Product, 0, len(productModels))
	for _, productModel := range productModels {
		variants, err := r.getVariantsByProduct(ctx, productModel.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *ToDomain(&productModel, variants))
	}
	return result, nil
}

func (r *Repository) getVariantsByProduct(ctx context.Context, productID int64) ([]VariantDB, error) {
	query := `SELECT id, product_id, weight_label, type, packaging, price, discount_percent, stock
		FROM variants
		WHERE product_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getvariants error: %w", err)
	}
	defer rows.Close()

	variants := make([]VariantDB, 0, 4)
	for rows.Next() {
		var variantModel VariantDB
		err := rows.Scan(
			&variantModel.ID,
			&variantModel.ProductID,
			&variantModel.WeightLabel,
			&variantModel.Type,
			&variantModel.Packaging,
			&variantModel.Price,
			&variantModel.DiscountPercent,
			&variantModel.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getvariants error: %w", err)
		}
		variants = append(variants, variantModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getvariants error: %w", err)
	}

	return variants, nil
}
