package advertisement_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	"storefront/internal/service/advertisement"
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
	var modifyDTO dto.AdvertisementModify
	err := json.NewDecoder(r.Body).Decode(&modifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateAdvertisement(r.Context(), dto.ToAdvertisementModify(modifyDTO))
	if err != nil {
		switch {
		case errors.Is(err, advertisement.ErrMissingRequiredFields),
			errors.Is(err, advertisement.ErrInvalidTitle),
			errors.Is(err, advertisement.ErrInvalidDateWindow):
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
