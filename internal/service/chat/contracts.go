package chat

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/gemini"
)

// Completer интерфейс языковой модели
type Completer interface {
	Complete(ctx context.Context, req gemini.Request) (string, error)
}

// HistoryStore интерфейс хранилища истории переписки
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, messages ...domain.ChatMessage) error
	List(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetServices() []domain.ServicePackage
}

// MetricsRecorder интерфейс метрик чата
type MetricsRecorder interface {
	ObserveChatReply(service, source string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
