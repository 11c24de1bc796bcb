package draft

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Machine машина состояний черновика бронирования
// Idle -> VehicleChosen -> ServiceChosen -> SlotChosen -> ReadyToSubmit -> Submitted (или Failed)
// Изменение значения раннего шага возвращает состояние к этому шагу, данные последующих шагов сохраняются
type Machine struct {
	mu   sync.Mutex
	deps Deps

	id        string
	sessionID string

	state          domain.DraftState
	draft          domain.BookingDraft
	readyAt        *time.Time
	lastRequest    *domain.BookingRequest
	confirmationID string
	lastError      string
	createdAt      time.Time
	updatedAt      time.Time

	submitting bool
	detached   bool
	discarded  bool
}

// New создает пустой черновик в состоянии Idle
func New(id, sessionID string, deps Deps) *Machine {
	deps = withDefaults(deps)
	now := deps.Clock.Now()

	return &Machine{
		deps:      deps,
		id:        id,
		sessionID: sessionID,
		state:     domain.StateIdle,
		draft:     domain.BookingDraft{AddOnIDs: []string{}},
		createdAt: now,
		updatedAt: now,
	}
}

// Restore восстанавливает машину из снимка
func Restore(snapshot domain.DraftSnapshot, deps Deps) (*Machine, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}

	s := snapshot.Clone()
	if s.Draft.AddOnIDs == nil {
		s.Draft.AddOnIDs = []string{}
	}

	return &Machine{
		deps:           withDefaults(deps),
		id:             s.ID,
		sessionID:      s.SessionID,
		state:          s.State,
		draft:          s.Draft,
		readyAt:        s.ReadyAt,
		lastRequest:    s.LastRequest,
		confirmationID: s.ConfirmationID,
		lastError:      s.LastError,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}, nil
}

func withDefaults(deps Deps) Deps {
	if deps.Clock == nil {
		deps.Clock = &RealTimeProvider{}
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	if deps.SubmitTimeout <= 0 {
		deps.SubmitTimeout = DefaultSubmitTimeout
	}
	if deps.Policy == (ContactPolicy{}) {
		deps.Policy = DefaultContactPolicy()
	}
	return deps
}

func (m *Machine) ID() string {
	return m.id
}

func (m *Machine) SessionID() string {
	return m.sessionID
}

// State возвращает текущее состояние
func (m *Machine) State() domain.DraftState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot возвращает копию текущего состояния черновика
func (m *Machine) Snapshot() domain.DraftSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// ChooseVehicle выбирает класс автомобиля, доступно на любом шаге до отправки
func (m *Machine) ChooseVehicle(class domain.VehicleClass) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}
	if !class.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVehicleClass, class)
	}

	if m.draft.VehicleClass == class && m.state.Rank() >= domain.StateVehicleChosen.Rank() {
		return nil
	}

	m.draft.VehicleClass = class
	m.moveToLocked(domain.StateVehicleChosen)
	return nil
}

// ChooseService выбирает основной пакет услуг
func (m *Machine) ChooseService(serviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}
	if m.state.Rank() < domain.StateVehicleChosen.Rank() {
		return fmt.Errorf("%w: choose a vehicle class first", ErrStepOutOfOrder)
	}

	service, err := m.deps.Catalog.GetService(serviceID)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnknownService, serviceID, err)
	}
	if service.IsAddOn {
		return fmt.Errorf("%w: %q is an add-on", ErrUnknownService, serviceID)
	}

	if m.draft.ServiceID == serviceID && m.state.Rank() >= domain.StateServiceChosen.Rank() {
		return nil
	}

	m.draft.ServiceID = serviceID
	m.moveToLocked(domain.StateServiceChosen)
	return nil
}

// ToggleAddOn добавляет или убирает доп. услугу, состояние не меняется
func (m *Machine) ToggleAddOn(addOnID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}
	if m.state.Rank() < domain.StateVehicleChosen.Rank() {
		return fmt.Errorf("%w: choose a vehicle class first", ErrStepOutOfOrder)
	}

	addOn, err := m.deps.Catalog.GetService(addOnID)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAddOn, addOnID, err)
	}
	if !addOn.IsAddOn {
		return fmt.Errorf("%w: %q is not an add-on", ErrInvalidAddOn, addOnID)
	}

	ids := m.draft.AddOnIDs
	i := sort.SearchStrings(ids, addOnID)
	if m.draft.HasAddOn(addOnID) {
		m.draft.AddOnIDs = append(append([]string{}, ids[:i]...), ids[i+1:]...)
	} else {
		next := make([]string, 0, len(ids)+1)
		next = append(next, ids[:i]...)
		next = append(next, addOnID)
		m.draft.AddOnIDs = append(next, ids[i:]...)
	}

	m.updatedAt = m.deps.Clock.Now()
	return nil
}

// ChooseSlot выбирает дату и время записи
func (m *Machine) ChooseSlot(date time.Time, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}
	if m.state.Rank() < domain.StateServiceChosen.Rank() {
		return fmt.Errorf("%w: choose a service first", ErrStepOutOfOrder)
	}

	slot := domain.NewTimeSlot(date, label)
	if !m.deps.Availability.IsSlotBookable(m.deps.Clock.Now(), slot) {
		return fmt.Errorf("%w: %s %s", ErrSlotUnavailable, slot.DateString(), slot.Label)
	}

	if m.draft.Slot != nil && m.draft.Slot.Equal(slot) && m.state.Rank() >= domain.StateSlotChosen.Rank() {
		return nil
	}

	m.draft.Slot = &slot
	m.moveToLocked(domain.StateSlotChosen)
	return nil
}

// ProvideContact сохраняет контактные данные и переводит черновик в ReadyToSubmit
func (m *Machine) ProvideContact(contact domain.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}
	if m.state.Rank() < domain.StateSlotChosen.Rank() {
		return fmt.Errorf("%w: choose a time slot first", ErrStepOutOfOrder)
	}

	normalized := contact.Normalized()
	if err := m.deps.Policy.Validate(normalized); err != nil {
		return err
	}

	if m.draft.Contact != nil && *m.draft.Contact == normalized && m.state.Rank() >= domain.StateReadyToSubmit.Rank() {
		return nil
	}

	m.draft.Contact = &normalized
	m.moveToLocked(domain.StateReadyToSubmit)
	return nil
}

// GoBack возвращает черновик на один завершенный шаг назад без потери данных
func (m *Machine) GoBack() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkMutableLocked(); err != nil {
		return err
	}

	switch m.state.Rank() {
	case domain.StateVehicleChosen.Rank():
		m.moveToLocked(domain.StateIdle)
	case domain.StateServiceChosen.Rank():
		m.moveToLocked(domain.StateVehicleChosen)
	case domain.StateSlotChosen.Rank():
		m.moveToLocked(domain.StateServiceChosen)
	case domain.StateReadyToSubmit.Rank():
		m.moveToLocked(domain.StateSlotChosen)
	default:
		return fmt.Errorf("%w: nothing to go back to", ErrStepOutOfOrder)
	}
	return nil
}

// Price рассчитывает текущую стоимость черновика
func (m *Machine) Price() (domain.PriceBreakdown, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.VehicleClass == "" || m.draft.ServiceID == "" {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: choose a vehicle class and a service first", ErrStepOutOfOrder)
	}

	price, err := m.deps.Pricing.ComputePrice(m.draft.VehicleClass, m.draft.ServiceID, m.draft.AddOnIDs)
	if err != nil {
		return domain.PriceBreakdown{}, mapPricingError(err)
	}
	return price, nil
}

// Submit отправляет черновик через шлюз
// Вызов шлюза не зависит от отмены ctx: если ctx завершится раньше, возвращается ErrSubmissionDetached,
// а результат отправки получит Listener
func (m *Machine) Submit(ctx context.Context) (string, error) {
	// 1. Проверяем состояние и собираем запрос
	m.mu.Lock()
	if m.discarded {
		m.mu.Unlock()
		return "", ErrDiscarded
	}
	if m.state.IsTerminal() {
		m.mu.Unlock()
		return "", ErrAlreadySubmitted
	}
	if m.submitting {
		m.mu.Unlock()
		return "", ErrSubmissionInProgress
	}
	if m.state != domain.StateReadyToSubmit && m.state != domain.StateFailed {
		m.mu.Unlock()
		return "", fmt.Errorf("%w: draft is not ready to submit", ErrStepOutOfOrder)
	}

	// Слот мог устареть, пока черновик ждал отправки: возвращаем на выбор времени
	if slot := m.draft.Slot; slot != nil && !m.deps.Availability.IsSlotBookable(m.deps.Clock.Now(), *slot) {
		m.moveToLocked(domain.StateSlotChosen)
		m.mu.Unlock()
		m.deps.Logger.Warn("Submit: draft=%s slot %s %s is no longer bookable", m.id, slot.DateString(), slot.Label)
		return "", fmt.Errorf("%w: %s %s", ErrSlotUnavailable, slot.DateString(), slot.Label)
	}

	req, err := m.buildRequestLocked()
	if err != nil {
		m.mu.Unlock()
		return "", err
	}
	m.lastRequest = &req
	m.submitting = true
	m.detached = false
	m.mu.Unlock()

	m.deps.Logger.Info("Submit: draft=%s, key=%s, total=%d", m.id, req.IdempotencyKey, req.Price.Total)

	// 2. Вызываем шлюз в отдельной горутине с собственным таймаутом
	done := make(chan SubmissionResult, 1)
	go m.runSubmission(ctx, req.Clone(), done)

	// 3. Ждем результат или завершение контекста вызывающего кода
	select {
	case result := <-done:
		return result.ConfirmationID, result.Err
	case <-ctx.Done():
		m.mu.Lock()
		if !m.submitting {
			m.mu.Unlock()
			result := <-done
			return result.ConfirmationID, result.Err
		}
		m.detached = true
		m.mu.Unlock()

		m.deps.Logger.Warn("Submit: draft=%s detached from caller: %v", m.id, ctx.Err())
		return "", fmt.Errorf("%w: %v", ErrSubmissionDetached, ctx.Err())
	}
}

func (m *Machine) runSubmission(parent context.Context, req domain.BookingRequest, done chan<- SubmissionResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), m.deps.SubmitTimeout)
	defer cancel()

	confirmationID, err := m.deps.Gateway.Submit(ctx, &req)
	if err == nil && confirmationID == "" {
		err = errors.New("gateway returned empty confirmation id")
	}

	result := m.complete(confirmationID, err)

	if result.Err != nil {
		m.deps.Logger.Error("Submit: draft=%s failed: %v", m.id, result.Err)
	} else {
		m.deps.Logger.Info("Submit: draft=%s confirmed as %s", m.id, result.ConfirmationID)
	}

	// Listener сохраняет итог до ответа вызывающему коду
	if m.deps.Listener != nil {
		m.deps.Listener.SubmissionCompleted(context.WithoutCancel(parent), result)
	}
	done <- result
}

func (m *Machine) complete(confirmationID string, gatewayErr error) SubmissionResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := SubmissionResult{Detached: m.detached}

	if gatewayErr != nil {
		m.state = domain.StateFailed
		m.lastError = gatewayErr.Error()
		result.Err = fmt.Errorf("%w: %v", ErrSubmission, gatewayErr)
	} else {
		m.state = domain.StateSubmitted
		m.confirmationID = confirmationID
		m.lastError = ""
		result.ConfirmationID = confirmationID
	}

	m.submitting = false
	m.detached = false
	m.updatedAt = m.deps.Clock.Now()
	result.Snapshot = m.snapshotLocked()
	return result
}

func (m *Machine) buildRequestLocked() (domain.BookingRequest, error) {
	d := m.draft
	if !d.VehicleClass.IsValid() || d.ServiceID == "" || d.Slot == nil || d.Contact == nil || m.readyAt == nil {
		return domain.BookingRequest{}, fmt.Errorf("%w: draft is incomplete", ErrStepOutOfOrder)
	}

	service, err := m.deps.Catalog.GetService(d.ServiceID)
	if err != nil {
		return domain.BookingRequest{}, fmt.Errorf("%w: %q: %v", ErrUnknownService, d.ServiceID, err)
	}

	price, err := m.deps.Pricing.ComputePrice(d.VehicleClass, d.ServiceID, d.AddOnIDs)
	if err != nil {
		return domain.BookingRequest{}, mapPricingError(err)
	}

	return buildRequest(m.id, d.Clone(), service, price, *m.readyAt), nil
}

func (m *Machine) checkMutableLocked() error {
	if m.discarded {
		return ErrDiscarded
	}
	if m.state.IsTerminal() {
		return ErrAlreadySubmitted
	}
	if m.submitting {
		return ErrSubmissionInProgress
	}
	return nil
}

// Discard закрывает черновик: дальнейшие изменения и отправка возвращают ErrDiscarded
// Черновик в процессе отправки закрыть нельзя
func (m *Machine) Discard() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.submitting {
		return ErrSubmissionInProgress
	}
	m.discarded = true
	m.updatedAt = m.deps.Clock.Now()
	return nil
}

// moveToLocked переводит черновик в состояние сразу после завершенного шага
func (m *Machine) moveToLocked(state domain.DraftState) {
	now := m.deps.Clock.Now()

	m.state = state
	if state == domain.StateReadyToSubmit {
		m.readyAt = &now
	} else {
		m.readyAt = nil
	}
	m.updatedAt = now
}

func (m *Machine) snapshotLocked() domain.DraftSnapshot {
	s := domain.DraftSnapshot{
		ID:             m.id,
		SessionID:      m.sessionID,
		State:          m.state,
		Draft:          m.draft,
		ReadyAt:        m.readyAt,
		LastRequest:    m.lastRequest,
		ConfirmationID: m.confirmationID,
		LastError:      m.lastError,
		Submitting:     m.submitting,
		CreatedAt:      m.createdAt,
		UpdatedAt:      m.updatedAt,
	}
	return s.Clone()
}

func validateSnapshot(s domain.DraftSnapshot) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSnapshot)
	}
	if !s.State.IsValid() {
		return fmt.Errorf("%w: unknown state %q", ErrInvalidSnapshot, s.State)
	}

	rank := s.State.Rank()
	d := s.Draft
	switch {
	case rank >= domain.StateVehicleChosen.Rank() && !d.VehicleClass.IsValid():
		return fmt.Errorf("%w: state %s without vehicle class", ErrInvalidSnapshot, s.State)
	case rank >= domain.StateServiceChosen.Rank() && d.ServiceID == "":
		return fmt.Errorf("%w: state %s without service", ErrInvalidSnapshot, s.State)
	case rank >= domain.StateSlotChosen.Rank() && d.Slot == nil:
		return fmt.Errorf("%w: state %s without slot", ErrInvalidSnapshot, s.State)
	case rank >= domain.StateReadyToSubmit.Rank() && (d.Contact == nil || s.ReadyAt == nil):
		return fmt.Errorf("%w: state %s without contact", ErrInvalidSnapshot, s.State)
	case s.State == domain.StateSubmitted && s.ConfirmationID == "":
		return fmt.Errorf("%w: submitted without confirmation id", ErrInvalidSnapshot)
	}

	if !sort.StringsAreSorted(d.AddOnIDs) {
		return fmt.Errorf("%w: add-ons are not normalized", ErrInvalidSnapshot)
	}
	return nil
}
