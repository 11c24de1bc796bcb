package get_chat_history

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/service/chat"
)

type ChatService interface {
	Conversation(ctx context.Context, sessionID string) (*chat.Conversation, error)
	Reset(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
