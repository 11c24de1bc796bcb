package discard_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
)

const (
	msgMissingSession = "missing session id"
	msgNotFound       = "draft not found"
	msgForbidden      = "access denied"
	msgInProgress     = "booking is being submitted, try again in a moment"
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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	if err := h.service.DiscardDraft(r.Context(), sessionID, draftID); err != nil {
		switch {
		case errors.Is(err, sessions.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%s, session_id=%s", draftID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, draft.ErrSubmissionInProgress):
			h.logger.Warn("DELETE /drafts/{id} - Submission in progress: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgInProgress)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to discard draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s", draftID)
	w.WriteHeader(http.StatusNoContent)
}
