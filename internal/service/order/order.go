package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
	"storefront/internal/service/catalog"
)

type Service struct {
	repository Repository
	cart       CartService
	stock      StockKeeper
	coupons    CouponRedeemer
	gateway    PaymentGateway
	txManager  TxManager
}

func New(
	repository Repository,
	cart CartService,
	stock StockKeeper,
	coupons CouponRedeemer,
	gateway PaymentGateway,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		cart:       cart,
		stock:      stock,
		coupons:    coupons,
		gateway:    gateway,
		txManager:  txManager,
	}
}

type PlacementRequest struct {
	UserID          int64
	PaymentType     entities.PaymentType
	CouponCode      string
	ShippingAddress entities.Address
}

// Placement — результат оформления. Для RAZORPAY содержит заказ шлюза,
// который клиент передает в checkout-виджет.
type Placement struct {
	Order        entities.Order
	GatewayOrder *GatewayOrder
}

// PlaceOrder оформляет заказ из корзины пользователя: в одной транзакции
// списывает сток по каждой позиции, применяет купон, создает заказ и
// очищает корзину. Сток проверяется здесь заново — значение, которое
// видел клиент, к этому моменту могло устареть.
func (s *Service) PlaceOrder(ctx context.Context, req PlacementRequest) (*Placement, error) {
	if !isValidPaymentType(req.PaymentType) {
		return nil, ErrInvalidPaymentType
	}
	if err := validateShippingAddress(req.ShippingAddress); err != nil {
		return nil, err
	}

	var placement Placement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.cart.GetCart(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		items := make([]entities.OrderItem, 0, len(cart.Items))
		categories := make([]entities.CategoryType, 0, len(cart.Items))
		for _, item := range cart.Items {
			if item.Quantity > item.Stock {
				return fmt.Errorf("%w: variant %d", ErrInsufficientStock, item.VariantID)
			}
			if err := s.stock.DecrementStock(ctx, item.VariantID, item.Quantity); err != nil {
				if errors.Is(err, catalog.ErrInsufficientStock) {
					return fmt.Errorf("%w: variant %d", ErrInsufficientStock, item.VariantID)
				}
				return fmt.Errorf("decrement stock for variant %d: %w", item.VariantID, err)
			}

			items = append(items, entities.OrderItem{
				ProductID:   item.ProductID,
				VariantID:   item.VariantID,
				ProductName: item.ProductName,
				WeightLabel: item.WeightLabel,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
			})
			categories = append(categories, item.Category)
		}

		var discount int64
		couponCode := strings.TrimSpace(req.CouponCode)
		if couponCode != "" {
			discount, err = s.coupons.Redeem(ctx, req.UserID, couponCode, cart.Subtotal, categories)
			if err != nil {
				return fmt.Errorf("redeem coupon: %w", err)
			}
		}

		now := time.Now().UTC()
		newOrder := entities.Order{
			ID:              uuid.NewString(),
			UserID:          req.UserID,
			Items:           items,
			Subtotal:        cart.Subtotal,
			ShippingCharge:  cart.Shipping,
			Discount:        discount,
			TotalAmount:     cart.Subtotal + cart.Shipping - discount,
			CouponCode:      couponCode,
			Status:          entities.OrderPlaced,
			PaymentType:     req.PaymentType,
			PaymentStatus:   entities.PaymentPending,
			ShippingAddress: req.ShippingAddress,
			CreatedAt:       now,
		}

		if req.PaymentType == entities.PaymentRazorpay {
			gatewayOrder, err := s.gateway.CreateOrder(ctx, newOrder.TotalAmount, newOrder.ID)
			if err != nil {
				return fmt.Errorf("create gateway order: %w", err)
			}
			newOrder.GatewayOrderID = gatewayOrder.ID
			placement.GatewayOrder = gatewayOrder
		}

		created, err := s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		placement.Order = *created

		if err := s.cart.ClearCart(ctx, req.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &placement, nil
}

// VerifyPayment сверяет подпись шлюза и помечает заказ оплаченным.
// Подпись — единственный источник истины: суммы из клиента не участвуют.
func (s *Service) VerifyPayment(ctx context.Context, userID int64, gatewayOrderID, paymentID, signature string) (*entities.Order, error) {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return nil, ErrMissingRequiredFields
	}

	orderEntity, err := s.repository.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("get order by gateway id: %w", err)
	}
	if orderEntity.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if orderEntity.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if !s.gateway.VerifySignature(gatewayOrderID, paymentID, signature) {
		if err := s.repository.UpdatePaymentStatus(ctx, orderEntity.ID, entities.PaymentFailed); err != nil {
			return nil, fmt.Errorf("mark payment failed: %w", err)
		}
		return nil, ErrSignatureMismatch
	}

	if err := s.repository.UpdatePaymentStatus(ctx, orderEntity.ID, entities.PaymentPaid); err != nil {
		return nil, fmt.Errorf("mark payment paid: %w", err)
	}

	orderEntity.PaymentStatus = entities.PaymentPaid
	return orderEntity, nil
}

// CancelOrder — отмена владельцем. Разрешена только пока заказ не отгружен.
func (s *Service) CancelOrder(ctx context.Context, userID int64, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var cancelled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.UserID != userID {
			return ErrNotOrderOwner
		}
		if orderEntity.Status != entities.OrderPlaced && orderEntity.Status != entities.OrderProcessing {
			return ErrCancelNotAllowed
		}

		if err := s.repository.UpdateStatus(ctx, orderID, orderEntity.Status, entities.OrderCancelled); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		for _, item := range orderEntity.Items {
			if err := s.stock.IncrementStock(ctx, item.VariantID, item.Quantity); err != nil {
				return fmt.Errorf("restock variant %d: %w", item.VariantID, err)
			}
		}

		orderEntity.Status = entities.OrderCancelled
		cancelled = orderEntity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// UpdateStatus — админский перевод статуса через guard. Переход
// записывается условно от текущего статуса, так что гонка двух админов
// не перепрыгнет шаг.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(target) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !CanTransition(orderEntity.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, orderEntity.Status, target)
		}

		if err := s.repository.UpdateStatus(ctx, orderID, orderEntity.Status, target); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if target == entities.OrderCancelled {
			for _, item := range orderEntity.Items {
				if err := s.stock.IncrementStock(ctx, item.VariantID, item.Quantity); err != nil {
					return fmt.Errorf("restock variant %d: %w", item.VariantID, err)
				}
			}
		}

		orderEntity.Status = target
		updated = orderEntity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SettlePayment переводит платежное состояние заказа по событию шлюза.
// Используется kafka-воркером; захваченный платеж на уже отмененном
// заказе оставляет заказ отмененным, но фиксирует оплату для возврата.
func (s *Service) SettlePayment(ctx context.Context, gatewayOrderID string, status entities.PaymentStatusType) (*entities.Order, error) {
	if gatewayOrderID == "" {
		return nil, ErrMissingRequiredFields
	}
	if status != entities.PaymentPaid && status != entities.PaymentFailed {
		return nil, ErrInvalidStatus
	}

	orderEntity, err := s.repository.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("get order by gateway id: %w", err)
	}

	if orderEntity.PaymentStatus == status {
		return orderEntity, nil
	}
	if orderEntity.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if err := s.repository.UpdatePaymentStatus(ctx, orderEntity.ID, status); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	orderEntity.PaymentStatus = status
	return orderEntity, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) GetUserOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	return orders, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all orders: %w", err)
	}
	return orders, nil
}
