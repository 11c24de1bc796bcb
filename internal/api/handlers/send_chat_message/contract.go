package send_chat_message

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/chat"
)

type ChatService interface {
	Reply(ctx context.Context, sessionID, message string) (*chat.Reply, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
