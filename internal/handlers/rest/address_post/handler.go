package address_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/handlers/rest/dto"
	authmw "storefront/internal/pkg/middlewares/auth"
	"storefront/internal/service/user"
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

	var addressDTO dto.Address
	err := json.NewDecoder(r.Body).Decode(&addressDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	address := entities.Address{
		UserID:     claims.UserID,
		FullName:   addressDTO.FullName,
		Phone:      addressDTO.Phone,
		Line:       addressDTO.Line,
		City:       addressDTO.City,
		State:      addressDTO.State,
		PostalCode: addressDTO.PostalCode,
	}

	id, err := h.service.AddAddress(r.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidPostalCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.IDResponse{
		ID: id,
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
