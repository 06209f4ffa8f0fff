package otp_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	"storefront/internal/service/auth"
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
	var verifyDTO dto.OTPVerify
	err := json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.VerifyOTP(r.Context(), verifyDTO.Email, verifyDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrOTPMismatch),
			errors.Is(err, auth.ErrOTPExpired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrOTPNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
