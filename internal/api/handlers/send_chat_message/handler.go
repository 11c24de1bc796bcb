package send_chat_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/service/chat"
)

const (
	msgMissingSession     = "missing session id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMessage     = "message must be between 1 and 2000 characters"
)

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /chat - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reply, err := h.service.Reply(r.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidMessage):
			h.logger.Warn("POST /chat - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		case errors.Is(err, chat.ErrInvalidSession):
			h.logger.Warn("POST /chat - Invalid session")
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /chat - Failed to reply: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat - Reply sent: session_id=%s, source=%s", sessionID, reply.Source)
	handlers.RespondJSON(w, http.StatusOK, &ChatResponse{
		Reply:  reply.Text,
		Source: reply.Source,
	})
}
