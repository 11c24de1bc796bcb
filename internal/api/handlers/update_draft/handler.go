package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const (
	msgMissingSession      = "missing session id"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgNotFound            = "draft not found"
	msgForbidden           = "access denied"
	msgStepOutOfOrder      = "this step is not available yet"
	msgAlreadySubmitted    = "booking has already been submitted"
	msgInProgress          = "booking submission is in progress"
	msgInvalidVehicleClass = "unsupported vehicle class"
	msgUnknownService      = "service not found"
	msgInvalidAddOn        = "invalid add-on"
	msgSlotUnavailable     = "selected time slot is not available"
	msgInvalidContact      = "please provide a valid name, email, phone and address"
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

type operation func(r *http.Request, sessionID, draftID string) (*models.DraftView, error)

// HandleVehicle PUT /api/v1/drafts/{draftId}/vehicle
func (h *Handler) HandleVehicle(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/vehicle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.handle(w, r, "PUT /drafts/{id}/vehicle", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.ChooseVehicle(r.Context(), sessionID, draftID, domain.VehicleClass(req.VehicleClass))
	})
}

// HandleService PUT /api/v1/drafts/{draftId}/service
func (h *Handler) HandleService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.handle(w, r, "PUT /drafts/{id}/service", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.ChooseService(r.Context(), sessionID, draftID, req.ServiceID)
	})
}

// HandleToggleAddOn POST /api/v1/drafts/{draftId}/add-ons/{addOnId}/toggle
func (h *Handler) HandleToggleAddOn(w http.ResponseWriter, r *http.Request) {
	addOnID := mux.Vars(r)["addOnId"]

	h.handle(w, r, "POST /drafts/{id}/add-ons/{id}/toggle", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.ToggleAddOn(r.Context(), sessionID, draftID, addOnID)
	})
}

// HandleSlot PUT /api/v1/drafts/{draftId}/slot
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/slot - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	h.handle(w, r, "PUT /drafts/{id}/slot", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.ChooseSlot(r.Context(), sessionID, draftID, date, req.Label)
	})
}

// HandleContact PUT /api/v1/drafts/{draftId}/contact
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.handle(w, r, "PUT /drafts/{id}/contact", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.ProvideContact(r.Context(), sessionID, draftID, req.ToDomain())
	})
}

// HandleBack POST /api/v1/drafts/{draftId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /drafts/{id}/back", func(r *http.Request, sessionID, draftID string) (*models.DraftView, error) {
		return h.service.GoBack(r.Context(), sessionID, draftID)
	})
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, op operation) {
	draftID := mux.Vars(r)["draftId"]

	// Получаем sessionID из контекста (через middleware Session)
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing session ID", route)
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := op(r, sessionID, draftID)
	if err != nil {
		h.respondError(w, route, draftID, err)
		return
	}

	h.logger.Info("%s - Draft updated: draft_id=%s, state=%s", route, draftID, view.Snapshot.State)
	handlers.RespondJSON(w, http.StatusOK, models.FromDraftView(view))
}

func (h *Handler) respondError(w http.ResponseWriter, route, draftID string, err error) {
	switch {
	case errors.Is(err, sessions.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, sessions.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: draft_id=%s", route, draftID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, draft.ErrStepOutOfOrder):
		h.logger.Warn("%s - Step out of order: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondConflict(w, msgStepOutOfOrder)

	case errors.Is(err, draft.ErrAlreadySubmitted):
		h.logger.Warn("%s - Draft already submitted: draft_id=%s", route, draftID)
		handlers.RespondConflict(w, msgAlreadySubmitted)

	case errors.Is(err, draft.ErrSubmissionInProgress):
		h.logger.Warn("%s - Submission in progress: draft_id=%s", route, draftID)
		handlers.RespondConflict(w, msgInProgress)

	case errors.Is(err, draft.ErrSlotUnavailable):
		h.logger.Warn("%s - Slot unavailable: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, draft.ErrInvalidVehicleClass):
		h.logger.Warn("%s - Invalid vehicle class: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondUnprocessable(w, msgInvalidVehicleClass)

	case errors.Is(err, draft.ErrUnknownService):
		h.logger.Warn("%s - Unknown service: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondUnprocessable(w, msgUnknownService)

	case errors.Is(err, draft.ErrInvalidAddOn):
		h.logger.Warn("%s - Invalid add-on: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondUnprocessable(w, msgInvalidAddOn)

	case errors.Is(err, draft.ErrInvalidContact):
		h.logger.Warn("%s - Invalid contact: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondUnprocessable(w, msgInvalidContact)

	default:
		h.logger.Error("%s - Failed to update draft: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondInternalError(w)
	}
}
