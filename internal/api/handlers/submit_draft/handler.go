package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const (
	msgMissingSession   = "missing session id"
	msgNotFound         = "draft not found"
	msgForbidden        = "access denied"
	msgNotReady         = "booking is not complete yet"
	msgAlreadySubmitted = "booking has already been submitted"
	msgInProgress       = "booking submission is in progress"
	msgSlotUnavailable  = "selected time slot is no longer available, please pick another one"
	msgConfirmed        = "Your booking is confirmed! A confirmation email is on its way."
	msgPending          = "We're still confirming your booking. We'll let you know as soon as it's done."
	msgFailed           = "We couldn't submit your booking. Please try again or call us."
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

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := h.service.Submit(r.Context(), sessionID, draftID)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrSubmissionDetached):
			// Отправка продолжается в фоне, результат придет в уведомлениях сессии
			h.logger.Warn("POST /drafts/{id}/submit - Submission detached: draft_id=%s", draftID)
			handlers.RespondJSON(w, http.StatusAccepted, newResponse(statusPending, msgPending, view))

		case errors.Is(err, draft.ErrSubmission):
			h.logger.Error("POST /drafts/{id}/submit - Submission failed: draft_id=%s, error=%v", draftID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, newResponse(statusFailed, msgFailed, view))

		case errors.Is(err, sessions.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, session_id=%s", draftID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, draft.ErrStepOutOfOrder):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not ready: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotReady)

		case errors.Is(err, draft.ErrAlreadySubmitted):
			h.logger.Warn("POST /drafts/{id}/submit - Already submitted: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, draft.ErrSubmissionInProgress):
			h.logger.Warn("POST /drafts/{id}/submit - Submission in progress: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, draft.ErrSlotUnavailable):
			h.logger.Warn("POST /drafts/{id}/submit - Slot no longer available: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := newResponse(statusConfirmed, msgConfirmed, view)

	h.logger.Info("POST /drafts/{id}/submit - Booking confirmed: draft_id=%s, confirmation_id=%s",
		draftID, response.ConfirmationID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func newResponse(status, message string, view *models.DraftView) *SubmitResponse {
	resp := &SubmitResponse{
		Status:  status,
		Message: message,
	}
	if view != nil {
		resp.Draft = models.FromDraftView(view)
		resp.ConfirmationID = view.Snapshot.ConfirmationID
	}
	return resp
}
