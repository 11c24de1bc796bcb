package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/bookings"
)

const (
	msgMissingEmail = "email is required"
	msgInvalidInput = "invalid confirmation code or email"
	msgNotFound     = "booking not found"
	msgForbidden    = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{confirmationCode}?email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем код подтверждения из URL
	code := mux.Vars(r)["confirmationCode"]

	// Email клиента подтверждает право на просмотр
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /bookings/{code} - Missing email: code=%s", code)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Получаем бронирование (сервис сам проверит права доступа)
	booking, err := h.service.GetByConfirmationCode(r.Context(), code, email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{code} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{code} - Access denied: code=%s", code)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{code} - Failed to get booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{code} - Booking retrieved successfully: code=%s", booking.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
