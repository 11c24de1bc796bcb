package start_draft

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

type DraftService interface {
	StartDraft(ctx context.Context, sessionID string) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
