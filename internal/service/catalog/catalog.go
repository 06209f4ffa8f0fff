package catalog

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Catalog struct {
	repository Repository
	reviews    ReviewRepository
	txManager  TxManager
}

func New(repository Repository, reviews ReviewRepository, txManager TxManager) *Catalog {
	return &Catalog{
		repository: repository,
		reviews:    reviews,
		txManager:  txManager,
	}
}

func (s *Catalog) CreateProduct(ctx context.Context, productModify entities.ProductModify, variants []entities.VariantModify) (int64, error) {
	if productModify.Name == nil ||
		productModify.Description == nil ||
		productModify.Category == nil ||
		len(variants) == 0 {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*productModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidCategory(*productModify.Category) {
		return 0, ErrInvalidCategory
	}
	for _, variant := range variants {
		if err := validateVariant(variant); err != nil {
			return 0, err
		}
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repository.Create(ctx, productModify, variants)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (s *Catalog) UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if productModify.Name == nil &&
		productModify.Description == nil &&
		productModify.Category == nil &&
		productModify.Images == nil &&
		productModify.Featured == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if productModify.Name != nil && !isValidName(*productModify.Name) {
		return nil, ErrInvalidName
	}
	if productModify.Category != nil && !isValidCategory(*productModify.Category) {
		return nil, ErrInvalidCategory
	}

	product, err := s.repository.Update(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *Catalog) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *Catalog) GetProduct(ctx context.Context, id int64) (*entities.Product, error) {
	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (s *Catalog) GetProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (s *Catalog) GetProductsByCategory(ctx context.Context, category entities.CategoryType) ([]entities.Product, error) {
	if !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	products, err := s.repository.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("get products by category: %w", err)
	}
	return products, nil
}

func (s *Catalog) AddVariant(ctx context.Context, variantModify entities.VariantModify) (int64, error) {
	if variantModify.ProductID == nil {
		return 0, ErrMissingRequiredFields
	}
	if err := validateVariant(variantModify); err != nil {
		return 0, err
	}

	id, err := s.repository.AddVariant(ctx, variantModify)
	if err != nil {
		return 0, fmt.Errorf("add variant: %w", err)
	}
	return id, nil
}

func (s *Catalog) GetVariant(ctx context.Context, variantID int64) (*entities.Variant, error) {
	variant, err := s.repository.GetVariant(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return variant, nil
}

// DecrementStock списывает сток атомарно; уход в минус невозможен —
// репозиторий возвращает ErrInsufficientStock.
func (s *Catalog) DecrementStock(ctx context.Context, variantID int64, quantity int32) error {
	if quantity < 1 {
		return ErrInvalidStock
	}
	if err := s.repository.AdjustStock(ctx, variantID, -quantity); err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

func (s *Catalog) IncrementStock(ctx context.Context, variantID int64, quantity int32) error {
	if quantity < 1 {
		return ErrInvalidStock
	}
	if err := s.repository.AdjustStock(ctx, variantID, quantity); err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

func (s *Catalog) AddReview(ctx context.Context, review entities.Review) (int64, error) {
	if review.ProductID == 0 || review.UserID == 0 {
		return 0, ErrMissingRequiredFields
	}
	if review.Rating < 1 || review.Rating > 5 {
		return 0, ErrInvalidRating
	}

	if _, err := s.repository.GetByID(ctx, review.ProductID); err != nil {
		return 0, fmt.Errorf("get product for review: %w", err)
	}

	id, err := s.reviews.Create(ctx, review)
	if err != nil {
		return 0, fmt.Errorf("create review: %w", err)
	}
	return id, nil
}

func (s *Catalog) GetReviews(ctx context.Context, productID int64) ([]entities.Review, error) {
	reviews, err := s.reviews.GetByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}
	return reviews, nil
}
