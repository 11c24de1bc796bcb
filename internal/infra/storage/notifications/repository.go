package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

const keyPrefix = "inbox:"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository входящие уведомления сессии (список в Redis)
type Repository struct {
	client redis.Cmdable
	ttl    time.Duration
	logger Logger
}

// NewRepository создает репозиторий уведомлений
func NewRepository(client redis.Cmdable, ttl time.Duration, logger Logger) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Push добавляет уведомление в конец очереди сессии
func (r *Repository) Push(ctx context.Context, sessionID string, n domain.Notification) error {
	data, err := json.Marshal(toRecord(n))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	key := inboxKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Push: session=%s: %v", ErrStorage, sessionID, err)
	}
	return nil
}

// Drain атомарно забирает все уведомления сессии в порядке поступления
func (r *Repository) Drain(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	key := inboxKey(sessionID)

	var items *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Drain: session=%s: %v", ErrStorage, sessionID, err)
	}

	result := make([]domain.Notification, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var rec notificationRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			r.logger.Warn("Drain: skipping malformed notification for session=%s: %v", sessionID, err)
			continue
		}
		result = append(result, rec.toDomain())
	}
	return result, nil
}

func inboxKey(sessionID string) string {
	return keyPrefix + sessionID
}
