package product_admin_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/service/catalog"
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

	var updateDTO dto.ProductUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	productModify := entities.ProductModify{
		ID:          &id,
		Name:        updateDTO.Name,
		Description: updateDTO.Description,
		Images:      updateDTO.Images,
		Featured:    updateDTO.Featured,
	}
	if updateDTO.Category != nil {
		category := entities.CategoryType(*updateDTO.Category)
		productModify.Category = &category
	}

	productEntity, err := h.service.UpdateProduct(r.Context(), productModify)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidName),
			errors.Is(err, catalog.ErrInvalidCategory):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, catalog.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromProduct(*productEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
