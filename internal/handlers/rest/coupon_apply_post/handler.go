package coupon_apply_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	authmw "storefront/internal/pkg/middlewares/auth"
	"storefront/internal/service/coupon"
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

	var applyDTO dto.CouponApply
	err := json.NewDecoder(r.Body).Decode(&applyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	discount, err := h.service.Preview(r.Context(), claims.UserID, applyDTO.Code, applyDTO.Subtotal)
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrMissingRequiredFields),
			errors.Is(err, coupon.ErrInvalidCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, coupon.ErrCouponNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, coupon.ErrCouponInactive),
			errors.Is(err, coupon.ErrCouponExpired),
			errors.Is(err, coupon.ErrMinPurchaseNotMet),
			errors.Is(err, coupon.ErrUsageLimitExceeded),
			errors.Is(err, coupon.ErrAlreadyRedeemed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CouponApplyResponse{
		Code:     applyDTO.Code,
		Discount: discount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
