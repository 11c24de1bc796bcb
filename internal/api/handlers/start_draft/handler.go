package start_draft

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const msgMissingSession = "missing session id"

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем sessionID из контекста (через middleware Session)
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := h.service.StartDraft(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("POST /drafts - Failed to start draft: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft started: draft_id=%s, session_id=%s", view.Snapshot.ID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDraftView(view))
}
