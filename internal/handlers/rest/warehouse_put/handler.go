package warehouse_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var modifyDTO dto.WarehouseModify
	err = json.NewDecoder(r.Body).Decode(&modifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	warehouseModify := dto.ToWarehouseModify(modifyDTO)
	warehouseModify.ID = &id

	warehouseEntity, err := h.service.UpdateWarehouse(r.Context(), warehouseModify)
	if err != nil {
		switch {
		case errors.Is(err, warehouse.ErrInvalidName),
			errors.Is(err, warehouse.ErrInvalidPhone),
			errors.Is(err, warehouse.ErrInvalidPincode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, warehouse.ErrWarehouseNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, warehouse.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromWarehouse(*warehouseEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
