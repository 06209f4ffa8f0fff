package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/handlers/rest/dto"
	authmw "storefront/internal/pkg/middlewares/auth"
	"storefront/internal/service/coupon"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := authmw.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var checkoutDTO dto.Checkout
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	placement, err := h.service.PlaceOrder(r.Context(), order.PlacementRequest{
		UserID:      claims.UserID,
		PaymentType: entities.PaymentType(checkoutDTO.PaymentType),
		CouponCode:  checkoutDTO.CouponCode,
		ShippingAddress: entities.Address{
			UserID:     claims.UserID,
			FullName:   checkoutDTO.ShippingAddress.FullName,
			Phone:      checkoutDTO.ShippingAddress.Phone,
			Line:       checkoutDTO.ShippingAddress.Line,
			City:       checkoutDTO.ShippingAddress.City,
			State:      checkoutDTO.ShippingAddress.State,
			PostalCode: checkoutDTO.ShippingAddress.PostalCode,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPaymentType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrInsufficientStock):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, coupon.ErrCouponNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, coupon.ErrCouponInactive),
			errors.Is(err, coupon.ErrCouponExpired),
			errors.Is(err, coupon.ErrMinPurchaseNotMet),
			errors.Is(err, coupon.ErrUsageLimitExceeded),
			errors.Is(err, coupon.ErrAlreadyRedeemed),
			errors.Is(err, coupon.ErrCategoryMismatch):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutResponse{
		Order: dto.FromOrder(placement.Order),
	}
	if placement.GatewayOrder != nil {
		response.GatewayOrder = &dto.GatewayOrder{
			ID:       placement.GatewayOrder.ID,
			Amount:   placement.GatewayOrder.Amount,
			Currency: placement.GatewayOrder.Currency,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
