package get_chat_history

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/service/chat"
)

// ConversationResponse HTTP response model
type ConversationResponse struct {
	Welcome  string            `json:"welcome"`
	Messages []MessageResponse `json:"messages"`
}

// MessageResponse сообщение переписки
type MessageResponse struct {
	Role      string `json:"role"` // user или model
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// FromConversation конвертирует chat.Conversation в ConversationResponse
func FromConversation(c *chat.Conversation) *ConversationResponse {
	messages := make([]MessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, MessageResponse{
			Role:      string(m.Role),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ConversationResponse{
		Welcome:  c.Welcome,
		Messages: messages,
	}
}
