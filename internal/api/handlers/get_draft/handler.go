package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const (
	msgMissingSession = "missing session id"
	msgNotFound       = "draft not found"
	msgForbidden      = "access denied"
)

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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id} - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := h.service.GetDraft(r.Context(), sessionID, draftID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id} - Access denied: draft_id=%s, session_id=%s", draftID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{id} - Draft retrieved: draft_id=%s, state=%s", draftID, view.Snapshot.State)
	handlers.RespondJSON(w, http.StatusOK, models.FromDraftView(view))
}
