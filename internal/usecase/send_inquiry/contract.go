package send_inquiry

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/integrations/email"
)

// EmailSender интерфейс отправки писем
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
