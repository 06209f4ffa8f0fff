package variant_admin_post

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
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var createDTO dto.VariantCreate
	err = json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	variantModify := entities.VariantModify{
		ProductID:       &productID,
		WeightLabel:     &createDTO.WeightLabel,
		Type:            &createDTO.Type,
		Packaging:       &createDTO.Packaging,
		Price:           &createDTO.Price,
		DiscountPercent: &createDTO.DiscountPercent,
		Stock:           &createDTO.Stock,
	}

	id, err := h.service.AddVariant(r.Context(), variantModify)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidPrice),
			errors.Is(err, catalog.ErrInvalidDiscount),
			errors.Is(err, catalog.ErrInvalidStock):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
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
