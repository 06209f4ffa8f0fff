package cart

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Cart struct {
	repository Repository
	variants   VariantReader
	txManager  TxManager
}

func New(repository Repository, variants VariantReader, txManager TxManager) *Cart {
	return &Cart{
		repository: repository,
		variants:   variants,
		txManager:  txManager,
	}
}

// GetCart собирает корзину с пересчитанными итогами. Сток и цена в
// позициях — свежие значения каталога на момент чтения.
func (s *Cart) GetCart(ctx context.Context, userID int64) (*entities.Cart, error) {
	items, err := s.repository.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}

	subtotal := Subtotal(items)
	shipping := ShippingCharge(subtotal)

	return &entities.Cart{
		UserID:   userID,
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Payable:  subtotal + shipping,
	}, nil
}

// AddItem кладет вариант в корзину. Повторное добавление суммирует
// количество, итог все равно ограничен стоком.
func (s *Cart) AddItem(ctx context.Context, userID, productID, variantID int64, quantity int32) (*entities.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		variant, err := s.variants.GetVariant(ctx, variantID)
		if err != nil {
			return fmt.Errorf("get variant: %w", err)
		}
		if variant.ProductID != productID {
			return ErrVariantNotFound
		}

		existing := int32(0)
		items, err := s.repository.GetItems(ctx, userID)
		if err != nil {
			return fmt.Errorf("get cart items: %w", err)
		}
		for _, item := range items {
			if item.ProductID == productID && item.VariantID == variantID {
				existing = item.Quantity
				break
			}
		}

		if existing+quantity > variant.Stock {
			return ErrQuantityExceedsStock
		}

		if err := s.repository.UpsertItem(ctx, userID, productID, variantID, existing+quantity, variant.Price); err != nil {
			return fmt.Errorf("upsert cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateQuantity устанавливает количество позиции. Значение зажато
// инвариантом 1 <= quantity <= stock; нарушение — отказ, не клампинг.
func (s *Cart) UpdateQuantity(ctx context.Context, userID, productID, variantID int64, quantity int32) (*entities.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		variant, err := s.variants.GetVariant(ctx, variantID)
		if err != nil {
			return fmt.Errorf("get variant: %w", err)
		}
		if quantity > variant.Stock {
			return ErrQuantityExceedsStock
		}

		if err := s.repository.UpdateQuantity(ctx, userID, productID, variantID, quantity); err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *Cart) RemoveItem(ctx context.Context, userID, productID, variantID int64) (*entities.Cart, error) {
	err := s.repository.RemoveItem(ctx, userID, productID, variantID)
	if err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}

	return s.GetCart(ctx, userID)
}

func (s *Cart) ClearCart(ctx context.Context, userID int64) error {
	if err := s.repository.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
