package get_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const msgMissingSession = "missing session id"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
// Уведомления удаляются из очереди после выдачи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	items, err := h.service.Notifications(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to drain inbox: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if len(items) > 0 {
		h.logger.Info("GET /notifications - Delivered %d notifications: session_id=%s", len(items), sessionID)
	}
	handlers.RespondJSON(w, http.StatusOK, &NotificationsResponse{
		Notifications: models.FromNotifications(items),
	})
}
