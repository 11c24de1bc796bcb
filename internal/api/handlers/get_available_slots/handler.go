package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidParams     = "invalid query parameters, expected days=<number> and date=YYYY-MM-DD"
	msgInvalidDays       = "days must not be negative"
	msgDateOutsideWindow = "date is outside the booking window"
	msgTooFarInFuture    = "requested range exceeds the booking window"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: days (optional), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Формируем запрос к use case (с парсингом параметров)
	useCaseReq, err := ToUseCaseRequest(query.Get("days"), query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /availability - Range too large: days=%d", useCaseReq.Days)
			handlers.RespondBadRequest(w, msgTooFarInFuture)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Date outside window: %v", err)
			handlers.RespondUnprocessable(w, msgDateOutsideWindow)

		default:
			h.logger.Error("GET /availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
