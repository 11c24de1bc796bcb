package gemini

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// DefaultModel модель по умолчанию
const DefaultModel = "gemini-2.5-flash"

// Request запрос к модели
type Request struct {
	System  string               // системная инструкция
	History []domain.ChatMessage // предыдущие сообщения в хронологическом порядке
	Message string               // новое сообщение пользователя
}

// Config параметры клиента
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
