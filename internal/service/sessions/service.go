package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	draftsRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/drafts"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

// Service владеет черновиками сессий: держит активные машины в памяти,
// сохраняет снимки в хранилище и доставляет поздние результаты отправки в очередь уведомлений
type Service struct {
	mu       sync.Mutex
	machines map[string]*entry

	store   DraftStore
	inbox   Inbox
	deps    draft.Deps
	clock   TimeProvider
	idleTTL time.Duration
	logger  Logger
}

// NewService создает сервис сессий
// deps.Listener заменяется самим сервисом
func NewService(
	store DraftStore,
	inbox Inbox,
	deps draft.Deps,
	idleTTL time.Duration,
	logger Logger,
) *Service {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	if deps.Clock == nil {
		deps.Clock = &draft.RealTimeProvider{}
	}

	s := &Service{
		machines: make(map[string]*entry),
		store:    store,
		inbox:    inbox,
		clock:    deps.Clock,
		idleTTL:  idleTTL,
		logger:   logger,
	}
	deps.Listener = s
	if deps.Logger == nil {
		deps.Logger = logger
	}
	s.deps = deps
	return s
}

// StartDraft создает новый черновик для сессии
func (s *Service) StartDraft(ctx context.Context, sessionID string) (*models.DraftView, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	m := draft.New(uuid.NewString(), sessionID, s.deps)

	s.mu.Lock()
	s.machines[m.ID()] = &entry{machine: m, lastAccess: s.clock.Now()}
	s.mu.Unlock()

	s.persist(ctx, m)
	s.logger.Info("StartDraft: draft=%s created for session=%s", m.ID(), sessionID)
	return s.view(m), nil
}

// GetDraft возвращает черновик сессии
func (s *Service) GetDraft(ctx context.Context, sessionID, draftID string) (*models.DraftView, error) {
	m, err := s.acquire(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	return s.view(m), nil
}

// ChooseVehicle выбирает класс автомобиля
func (s *Service) ChooseVehicle(ctx context.Context, sessionID, draftID string, class domain.VehicleClass) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "ChooseVehicle", func(m *draft.Machine) error {
		return m.ChooseVehicle(class)
	})
}

// ChooseService выбирает основной пакет услуг
func (s *Service) ChooseService(ctx context.Context, sessionID, draftID, serviceID string) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "ChooseService", func(m *draft.Machine) error {
		return m.ChooseService(serviceID)
	})
}

// ToggleAddOn добавляет или убирает дополнительную услугу
func (s *Service) ToggleAddOn(ctx context.Context, sessionID, draftID, addOnID string) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "ToggleAddOn", func(m *draft.Machine) error {
		return m.ToggleAddOn(addOnID)
	})
}

// ChooseSlot выбирает дату и время записи
func (s *Service) ChooseSlot(ctx context.Context, sessionID, draftID string, date time.Time, label string) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "ChooseSlot", func(m *draft.Machine) error {
		return m.ChooseSlot(date, label)
	})
}

// ProvideContact сохраняет контактные данные клиента
func (s *Service) ProvideContact(ctx context.Context, sessionID, draftID string, contact domain.Contact) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "ProvideContact", func(m *draft.Machine) error {
		return m.ProvideContact(contact)
	})
}

// GoBack возвращает черновик на шаг назад
func (s *Service) GoBack(ctx context.Context, sessionID, draftID string) (*models.DraftView, error) {
	return s.mutate(ctx, sessionID, draftID, "GoBack", func(m *draft.Machine) error {
		return m.GoBack()
	})
}

// Submit отправляет черновик
// При draft.ErrSubmissionDetached результат позже появится в очереди уведомлений сессии
func (s *Service) Submit(ctx context.Context, sessionID, draftID string) (*models.DraftView, error) {
	m, err := s.acquire(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	confirmationID, err := m.Submit(ctx)
	if errors.Is(err, draft.ErrDiscarded) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		s.logger.Warn("Submit: draft=%s, session=%s: %v", draftID, sessionID, err)
		if errors.Is(err, draft.ErrSlotUnavailable) {
			s.persist(ctx, m)
		}
		return s.view(m), err
	}

	s.logger.Info("Submit: draft=%s confirmed as %s", draftID, confirmationID)
	return s.view(m), nil
}

// DiscardDraft удаляет черновик сессии из памяти и хранилища
// Отправленный черновик тоже можно удалить: бронирование уже сохранено шлюзом
func (s *Service) DiscardDraft(ctx context.Context, sessionID, draftID string) error {
	m, err := s.acquire(ctx, sessionID, draftID)
	if err != nil {
		return err
	}

	if err := m.Discard(); err != nil {
		s.logger.Warn("DiscardDraft: draft=%s rejected: %v", draftID, err)
		return err
	}

	s.mu.Lock()
	delete(s.machines, draftID)
	s.mu.Unlock()

	if err := s.store.Delete(ctx, draftID); err != nil {
		s.logger.Error("DiscardDraft: failed to delete draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: DiscardDraft: %v", ErrInternal, err)
	}

	s.logger.Info("DiscardDraft: draft=%s discarded by session=%s", draftID, sessionID)
	return nil
}

// Notifications забирает накопленные уведомления сессии
func (s *Service) Notifications(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	items, err := s.inbox.Drain(ctx, sessionID)
	if err != nil {
		s.logger.Error("Notifications: session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Notifications: %v", ErrInternal, err)
	}
	return items, nil
}

// SubmissionCompleted сохраняет итог отправки; если вызывающий код не дождался ответа,
// кладет уведомление в очередь сессии
func (s *Service) SubmissionCompleted(ctx context.Context, result draft.SubmissionResult) {
	snapshot := result.Snapshot

	s.mu.Lock()
	e, ok := s.machines[snapshot.ID]
	s.mu.Unlock()
	if ok {
		snapshot = e.machine.Snapshot()
	}

	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Error("SubmissionCompleted: failed to persist draft=%s: %v", snapshot.ID, err)
	}

	if !result.Detached {
		return
	}

	n := notificationFor(result, s.clock.Now())
	if err := s.inbox.Push(ctx, snapshot.SessionID, n); err != nil {
		s.logger.Error("SubmissionCompleted: failed to notify session=%s about draft=%s: %v",
			snapshot.SessionID, snapshot.ID, err)
		return
	}
	s.logger.Info("SubmissionCompleted: %s notification queued for session=%s", n.Kind, snapshot.SessionID)
}

// EvictIdle выгружает из памяти черновики, неактивные дольше idleTTL
// Снимки остаются в хранилище и восстанавливаются при следующем обращении
func (s *Service) EvictIdle() int {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.machines {
		if e.lastAccess.After(cutoff) {
			continue
		}
		if e.machine.Snapshot().Submitting {
			continue
		}
		delete(s.machines, id)
		evicted++
	}
	return evicted
}

// RunJanitor периодически выгружает неактивные черновики до отмены ctx
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.logger.Info("RunJanitor: evicted %d idle drafts", n)
			}
		}
	}
}

func (s *Service) mutate(
	ctx context.Context,
	sessionID, draftID, op string,
	fn func(m *draft.Machine) error,
) (*models.DraftView, error) {
	m, err := s.acquire(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if err := fn(m); err != nil {
		if errors.Is(err, draft.ErrDiscarded) {
			return nil, ErrDraftNotFound
		}
		s.logger.Warn("%s: draft=%s rejected: %v", op, draftID, err)
		return nil, err
	}

	s.persist(ctx, m)
	return s.view(m), nil
}

// acquire находит машину в памяти или восстанавливает ее из хранилища и проверяет владельца
func (s *Service) acquire(ctx context.Context, sessionID, draftID string) (*draft.Machine, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	now := s.clock.Now()

	s.mu.Lock()
	e, ok := s.machines[draftID]
	if ok {
		e.lastAccess = now
	}
	s.mu.Unlock()

	if !ok {
		m, err := s.restore(ctx, draftID)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if existing, found := s.machines[draftID]; found {
			e = existing
		} else {
			e = &entry{machine: m}
			s.machines[draftID] = e
		}
		e.lastAccess = now
		s.mu.Unlock()
	}

	if e.machine.SessionID() != sessionID {
		s.logger.Warn("acquire: session=%s has no access to draft=%s", sessionID, draftID)
		return nil, ErrAccessDenied
	}
	return e.machine, nil
}

func (s *Service) restore(ctx context.Context, draftID string) (*draft.Machine, error) {
	snapshot, err := s.store.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftsRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("restore: failed to load draft=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: restore: %v", ErrInternal, err)
	}

	m, err := draft.Restore(snapshot, s.deps)
	if err != nil {
		s.logger.Error("restore: stored draft=%s is inconsistent: %v", draftID, err)
		return nil, fmt.Errorf("%w: restore: %v", ErrInternal, err)
	}

	s.logger.Info("restore: draft=%s restored in state %s", draftID, snapshot.State)
	return m, nil
}

// persist сохраняет снимок; ошибка хранилища не отменяет изменение в памяти
func (s *Service) persist(ctx context.Context, m *draft.Machine) {
	if err := s.store.Save(ctx, m.Snapshot()); err != nil {
		s.logger.Error("persist: failed to save draft=%s: %v", m.ID(), err)
	}
}

func (s *Service) view(m *draft.Machine) *models.DraftView {
	v := &models.DraftView{Snapshot: m.Snapshot()}
	if price, err := m.Price(); err == nil {
		v.Price = &price
	}
	return v
}

func notificationFor(result draft.SubmissionResult, now time.Time) domain.Notification {
	snapshot := result.Snapshot
	n := domain.Notification{
		ID:        uuid.NewString(),
		DraftID:   snapshot.ID,
		CreatedAt: now,
	}

	if result.Err != nil {
		n.Kind = domain.NotificationBookingFailed
		n.Message = "We could not send your booking request. Your details are saved, please try submitting again."
		return n
	}

	n.Kind = domain.NotificationBookingConfirmed
	n.ConfirmationID = result.ConfirmationID
	n.Message = fmt.Sprintf("Your booking request %s has been received.", result.ConfirmationID)
	if req := snapshot.LastRequest; req != nil {
		n.Message = fmt.Sprintf("Your booking request %s for %s on %s at %s has been received.",
			result.ConfirmationID, req.ServiceTitle, req.Slot.DateString(), req.Slot.Label)
	}
	return n
}
