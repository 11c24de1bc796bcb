package chat

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// Источник ответа ассистента
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// WelcomeMessage первое сообщение ассистента в новой переписке
const WelcomeMessage = "Hello! I'm your Burrell & Co. assistant. I can help you choose the perfect detailing package. What kind of vehicle do you have?"

// Business сведения о бизнесе для системной инструкции
type Business struct {
	Name      string
	OwnerName string
	Phone     string
}

// Reply ответ ассистента
type Reply struct {
	Text   string
	Source string
}

// Conversation история переписки сессии
type Conversation struct {
	Welcome  string
	Messages []domain.ChatMessage
}
