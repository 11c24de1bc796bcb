package send_inquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	sendInquiry "github.com/m04kA/SMC-DetailingService/internal/usecase/send_inquiry"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInquiry     = "please provide your name, a valid phone number and a message"
	msgDeliveryFailed     = "we could not send your message, please call or text us instead"
)

type Handler struct {
	useCase SendInquiryUseCase
	logger  Logger
}

func NewHandler(useCase SendInquiryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendInquiry.ErrInvalidInquiry):
			h.logger.Warn("POST /contact - Invalid inquiry: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInquiry)

		case errors.Is(err, sendInquiry.ErrDeliveryFailed):
			h.logger.Error("POST /contact - Delivery failed: %v", err)
			handlers.RespondBadGateway(w, msgDeliveryFailed)

		default:
			h.logger.Error("POST /contact - Failed to send inquiry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Inquiry delivered")
	handlers.RespondJSON(w, http.StatusOK, &InquiryResponse{Message: resp.Message})
}
