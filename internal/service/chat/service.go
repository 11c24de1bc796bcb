package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/gemini"
)

// Service чат-ассистент: Gemini с историей в Redis и офлайн-ответами по ключевым словам
type Service struct {
	completer   Completer // nil, если модель не настроена
	history     HistoryStore
	catalog     Catalog
	metrics     MetricsRecorder
	business    Business
	serviceName string
	clock       TimeProvider
	logger      Logger
}

// NewService создает сервис чата
func NewService(
	completer Completer,
	history HistoryStore,
	catalog Catalog,
	metrics MetricsRecorder,
	business Business,
	serviceName string,
	logger Logger,
) *Service {
	return &Service{
		completer:   completer,
		history:     history,
		catalog:     catalog,
		metrics:     metrics,
		business:    business,
		serviceName: serviceName,
		clock:       &RealTimeProvider{},
		logger:      logger,
	}
}

// Reply отвечает на сообщение пользователя
func (s *Service) Reply(ctx context.Context, sessionID, message string) (*Reply, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is empty", ErrInvalidMessage)
	}
	if utf8.RuneCountInString(message) > domain.MaxChatMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidMessage, domain.MaxChatMessageLength)
	}

	services := s.catalog.GetServices()
	sentAt := s.clock.Now()

	// 2. Загружаем историю (ошибка хранилища не мешает ответу)
	history, err := s.history.List(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Reply: failed to load history for session=%s: %v", sessionID, err)
		history = nil
	}

	// 3. Получаем ответ модели или офлайн-ответ
	reply := &Reply{Source: SourceFallback}
	if s.completer != nil {
		text, err := s.completer.Complete(ctx, gemini.Request{
			System:  BuildSystemPrompt(s.business, services),
			History: history,
			Message: message,
		})
		if err != nil {
			s.logger.Warn("Reply: model unavailable for session=%s, using fallback: %v", sessionID, err)
		} else {
			reply.Text = text
			reply.Source = SourceModel
		}
	}
	if reply.Source == SourceFallback {
		reply.Text = fallbackReply(message, services)
	}

	// 4. Сохраняем обмен сообщениями
	err = s.history.Append(ctx, sessionID,
		domain.ChatMessage{Role: domain.ChatRoleUser, Text: message, CreatedAt: sentAt},
		domain.ChatMessage{Role: domain.ChatRoleModel, Text: reply.Text, CreatedAt: s.clock.Now()},
	)
	if err != nil {
		s.logger.Warn("Reply: failed to store history for session=%s: %v", sessionID, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveChatReply(s.serviceName, reply.Source)
	}

	s.logger.Info("Reply: session=%s answered from %s", sessionID, reply.Source)
	return reply, nil
}

// Conversation возвращает историю переписки сессии
func (s *Service) Conversation(ctx context.Context, sessionID string) (*Conversation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	messages, err := s.history.List(ctx, sessionID)
	if err != nil {
		s.logger.Error("Conversation: session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Conversation: %v", ErrInternal, err)
	}
	return &Conversation{Welcome: WelcomeMessage, Messages: messages}, nil
}

// Reset удаляет историю переписки сессии
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}

	if err := s.history.Clear(ctx, sessionID); err != nil {
		s.logger.Error("Reset: session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Reset: %v", ErrInternal, err)
	}
	return nil
}
