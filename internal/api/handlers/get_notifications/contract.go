package get_notifications

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type NotificationService interface {
	Notifications(ctx context.Context, sessionID string) ([]domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
