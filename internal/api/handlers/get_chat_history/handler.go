package get_chat_history

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
)

const msgMissingSession = "missing session id"

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

// Handle GET /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /chat - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	conversation, err := h.service.Conversation(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /chat - Failed to load conversation: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chat - Conversation retrieved: session_id=%s, messages=%d", sessionID, len(conversation.Messages))
	handlers.RespondJSON(w, http.StatusOK, FromConversation(conversation))
}

// HandleReset DELETE /api/v1/chat
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /chat - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	if err := h.service.Reset(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /chat - Failed to reset conversation: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /chat - Conversation reset: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
