package cart_item_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	authmw "storefront/internal/pkg/middlewares/auth"
	"storefront/internal/service/cart"
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

	var addDTO dto.CartItemAdd
	err := json.NewDecoder(r.Body).Decode(&addDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cartEntity, err := h.service.AddItem(r.Context(), claims.UserID, addDTO.ProductID, addDTO.VariantID, addDTO.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrMissingRequiredFields),
			errors.Is(err, cart.ErrInvalidQuantity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cart.ErrVariantNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, cart.ErrQuantityExceedsStock):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCart(*cartEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
