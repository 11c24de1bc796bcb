package chathistory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

const keyPrefix = "chat:"

type messageRecord struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository история переписки с ассистентом, ограниченная последними limit сообщениями
type Repository struct {
	client redis.Cmdable
	limit  int
	ttl    time.Duration
}

// NewRepository создает репозиторий истории чата
func NewRepository(client redis.Cmdable, limit int, ttl time.Duration) *Repository {
	if limit <= 0 {
		limit = domain.DefaultChatHistorySize
	}
	return &Repository{
		client: client,
		limit:  limit,
		ttl:    ttl,
	}
}

// Append добавляет сообщения и обрезает историю до limit последних
func (r *Repository) Append(ctx context.Context, sessionID string, messages ...domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		data, err := json.Marshal(messageRecord{Role: string(msg.Role), Text: msg.Text, CreatedAt: msg.CreatedAt})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		values = append(values, data)
	}

	key := chatKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, int64(-r.limit), -1)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Append: session=%s: %v", ErrStorage, sessionID, err)
	}
	return nil
}

// List возвращает историю в хронологическом порядке; поврежденные записи пропускаются
func (r *Repository) List(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	items, err := r.client.LRange(ctx, chatKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List: session=%s: %v", ErrStorage, sessionID, err)
	}

	history := make([]domain.ChatMessage, 0, len(items))
	for _, raw := range items {
		var rec messageRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			continue
		}
		history = append(history, domain.ChatMessage{
			Role:      domain.ChatRole(rec.Role),
			Text:      rec.Text,
			CreatedAt: rec.CreatedAt,
		})
	}
	return history, nil
}

// Clear удаляет историю сессии
func (r *Repository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, chatKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Clear: session=%s: %v", ErrStorage, sessionID, err)
	}
	return nil
}

func chatKey(sessionID string) string {
	return keyPrefix + sessionID
}
