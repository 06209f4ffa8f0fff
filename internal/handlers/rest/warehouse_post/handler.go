package warehouse_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	"storefront/internal/service/warehouse"
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
	var modifyDTO dto.WarehouseModify
	err := json.NewDecoder(r.Body).Decode(&modifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateWarehouse(r.Context(), dto.ToWarehouseModify(modifyDTO))
	if err != nil {
		switch {
		case errors.Is(err, warehouse.ErrMissingRequiredFields),
			errors.Is(err, warehouse.ErrInvalidName),
			errors.Is(err, warehouse.ErrInvalidPhone),
			errors.Is(err, warehouse.ErrInvalidPincode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, warehouse.ErrConflict):
			w.WriteHeader(http.StatusConflict)
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
