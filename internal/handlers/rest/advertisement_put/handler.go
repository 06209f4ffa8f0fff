package advertisement_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var modifyDTO dto.AdvertisementModify
	err = json.NewDecoder(r.Body).Decode(&modifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	adModify := dto.ToAdvertisementModify(modifyDTO)
	adModify.ID = &id

	adEntity, err := h.service.UpdateAdvertisement(r.Context(), adModify)
	if err != nil {
		switch {
		case errors.Is(err, advertisement.ErrInvalidTitle),
			errors.Is(err, advertisement.ErrInvalidDateWindow):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, advertisement.ErrAdvertisementNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromAdvertisement(*adEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
