package product_admin_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var createDTO dto.ProductCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	category := entities.CategoryType(createDTO.Category)
	productModify := entities.ProductModify{
		Name:        &createDTO.Name,
		Description: &createDTO.Description,
		Category:    &category,
		Featured:    createDTO.Featured,
	}
	if createDTO.Images != nil {
		productModify.Images = &createDTO.Images
	}

	variants := make([]entities.VariantModify, 0, len(createDTO.Variants))
	for i := range createDTO.Variants {
		v := &createDTO.Variants[i]
		variants = append(variants, entities.VariantModify{
			WeightLabel:     &v.WeightLabel,
			Type:            &v.Type,
			Packaging:       &v.Packaging,
			Price:           &v.Price,
			DiscountPercent: &v.DiscountPercent,
			Stock:           &v.Stock,
		})
	}

	id, err := h.service.CreateProduct(r.Context(), productModify, variants)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidName),
			errors.Is(err, catalog.ErrInvalidCategory),
			errors.Is(err, catalog.ErrInvalidPrice),
			errors.Is(err, catalog.ErrInvalidDiscount),
			errors.Is(err, catalog.ErrInvalidStock):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrConflict):
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
