package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

const keyPrefix = "draft:"

// Repository хранилище снимков черновиков в Redis
type Repository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRepository создает репозиторий снимков; ttl <= 0 означает хранение без срока
func NewRepository(client redis.Cmdable, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

// Save сохраняет снимок черновика, продлевая срок хранения
func (r *Repository) Save(ctx context.Context, snapshot domain.DraftSnapshot) error {
	data, err := json.Marshal(toRecord(snapshot))
	if err != nil {
		return fmt.Errorf("%w: draft=%s: %v", ErrEncode, snapshot.ID, err)
	}

	if err := r.client.Set(ctx, draftKey(snapshot.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: draft=%s: %v", ErrStorage, snapshot.ID, err)
	}
	return nil
}

// Get возвращает снимок черновика по ID
func (r *Repository) Get(ctx context.Context, id string) (domain.DraftSnapshot, error) {
	data, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DraftSnapshot{}, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
		}
		return domain.DraftSnapshot{}, fmt.Errorf("%w: Get: draft=%s: %v", ErrStorage, id, err)
	}

	var rec snapshotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("%w: draft=%s: %v", ErrDecode, id, err)
	}

	snapshot, err := rec.toDomain()
	if err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("%w: draft=%s: %v", ErrDecode, id, err)
	}
	return snapshot, nil
}

// Delete удаляет снимок черновика
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: draft=%s: %v", ErrStorage, id, err)
	}
	return nil
}

func draftKey(id string) string {
	return keyPrefix + id
}
