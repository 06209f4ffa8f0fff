package coupon_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"storefront/internal/handlers/rest/dto"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var modifyDTO dto.CouponModify
	err = json.NewDecoder(r.Body).Decode(&modifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	couponModify := dto.ToCouponModify(modifyDTO)
	couponModify.ID = &id

	couponEntity, err := h.service.UpdateCoupon(r.Context(), couponModify)
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrMissingRequiredFields),
			errors.Is(err, coupon.ErrInvalidCode),
			errors.Is(err, coupon.ErrInvalidDiscountType),
			errors.Is(err, coupon.ErrInvalidDiscountValue),
			errors.Is(err, coupon.ErrInvalidExpiryDate),
			errors.Is(err, coupon.ErrInvalidCategory):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, coupon.ErrCouponNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, coupon.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCoupon(*couponEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
