package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// DraftStore интерфейс хранилища снимков черновиков
type DraftStore interface {
	Save(ctx context.Context, snapshot domain.DraftSnapshot) error
	Get(ctx context.Context, id string) (domain.DraftSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// Inbox интерфейс очереди уведомлений сессии
type Inbox interface {
	Push(ctx context.Context, sessionID string, n domain.Notification) error
	Drain(ctx context.Context, sessionID string) ([]domain.Notification, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
