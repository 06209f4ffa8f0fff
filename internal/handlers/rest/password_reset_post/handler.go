package password_reset_post

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
	var resetDTO dto.PasswordReset
	err := json.NewDecoder(r.Body).Decode(&resetDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ResetPassword(r.Context(), resetDTO.Email, resetDTO.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidPassword),
			errors.Is(err, auth.ErrOTPNotVerified),
			errors.Is(err, auth.ErrOTPExpired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrOTPNotFound),
			errors.Is(err, auth.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
