package submit_draft

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

type DraftService interface {
	Submit(ctx context.Context, sessionID, draftID string) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
