package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/availability"
	"github.com/m04kA/SMC-DetailingService/internal/catalog"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	draftsRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/drafts"
	"github.com/m04kA/SMC-DetailingService/internal/pricing"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memStore struct {
	mu    sync.Mutex
	items map[string]domain.DraftSnapshot
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]domain.DraftSnapshot)}
}

func (s *memStore) Save(_ context.Context, snapshot domain.DraftSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[snapshot.ID] = snapshot.Clone()
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (domain.DraftSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.items[id]
	if !ok {
		return domain.DraftSnapshot{}, draftsRepo.ErrDraftNotFound
	}
	return snapshot.Clone(), nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *memStore) get(id string) domain.DraftSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

type memInbox struct {
	mu    sync.Mutex
	items map[string][]domain.Notification
}

func newMemInbox() *memInbox {
	return &memInbox{items: make(map[string][]domain.Notification)}
}

func (i *memInbox) Push(_ context.Context, sessionID string, n domain.Notification) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items[sessionID] = append(i.items[sessionID], n)
	return nil
}

func (i *memInbox) Drain(_ context.Context, sessionID string) ([]domain.Notification, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	items := i.items[sessionID]
	delete(i.items, sessionID)
	return items, nil
}

func (i *memInbox) size(sessionID string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items[sessionID])
}

type stubGateway struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func (g *stubGateway) Submit(_ context.Context, req *domain.BookingRequest) (string, error) {
	if g.started != nil {
		close(g.started)
	}
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return "", g.err
	}
	return "BC-" + req.IdempotencyKey[:8], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc   *Service
	store *memStore
	inbox *memInbox
	clock *testClock
	deps  draft.Deps
}

func newFixture(t *testing.T, gateway draft.Gateway) *fixture {
	t.Helper()
	cat := catalog.Default()
	clock := &testClock{now: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)}
	deps := draft.Deps{
		Catalog:      cat,
		Pricing:      pricing.New(cat),
		Availability: availability.NewDefault(),
		Gateway:      gateway,
		Clock:        clock,
	}
	store := newMemStore()
	inbox := newMemInbox()
	return &fixture{
		svc:   NewService(store, inbox, deps, time.Hour, nopLogger{}),
		store: store,
		inbox: inbox,
		clock: clock,
		deps:  deps,
	}
}

func (f *fixture) fill(t *testing.T, sessionID, draftID string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.ChooseVehicle(ctx, sessionID, draftID, domain.VehicleSedan)
	require.NoError(t, err)
	_, err = f.svc.ChooseService(ctx, sessionID, draftID, "maintenance-wash")
	require.NoError(t, err)
	_, err = f.svc.ChooseSlot(ctx, sessionID, draftID, f.clock.Now().AddDate(0, 0, 1), "09:00 AM")
	require.NoError(t, err)
	_, err = f.svc.ProvideContact(ctx, sessionID, draftID, domain.Contact{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "951-555-0142",
		Address: "123 Main St, Riverside, CA 92501",
	})
	require.NoError(t, err)
}

func TestService_FullFlow(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, view.Snapshot.State)
	assert.Nil(t, view.Price)
	draftID := view.Snapshot.ID

	f.fill(t, "s-1", draftID)

	view, err = f.svc.ToggleAddOn(ctx, "s-1", draftID, "engine-bay")
	require.NoError(t, err)
	require.NotNil(t, view.Price)
	assert.Equal(t, int64(19000), view.Price.Total)

	view, err = f.svc.Submit(ctx, "s-1", draftID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmitted, view.Snapshot.State)
	assert.NotEmpty(t, view.Snapshot.ConfirmationID)

	require.Eventually(t, func() bool {
		return f.store.get(draftID).State == domain.StateSubmitted
	}, time.Second, 10*time.Millisecond)

	items, err := f.svc.Notifications(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_OwnershipIsChecked(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)

	_, err = f.svc.GetDraft(ctx, "s-2", view.Snapshot.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.ChooseVehicle(ctx, "s-2", view.Snapshot.ID, domain.VehicleLarge)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UnknownDraftAndSession(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	_, err := f.svc.GetDraft(ctx, "s-1", "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = f.svc.StartDraft(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_MachineErrorsPassThrough(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)

	_, err = f.svc.ChooseService(ctx, "s-1", view.Snapshot.ID, "maintenance-wash")
	assert.ErrorIs(t, err, draft.ErrStepOutOfOrder)
	assert.Equal(t, domain.StateIdle, f.store.get(view.Snapshot.ID).State)
}

func TestService_RestoresFromStore(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	f.fill(t, "s-1", view.Snapshot.ID)

	restarted := NewService(f.store, f.inbox, f.deps, time.Hour, nopLogger{})

	got, err := restarted.GetDraft(ctx, "s-1", view.Snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateReadyToSubmit, got.Snapshot.State)
	assert.Equal(t, "maintenance-wash", got.Snapshot.Draft.ServiceID)

	_, err = restarted.GetDraft(ctx, "s-2", view.Snapshot.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_EvictIdle(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	first, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	f.clock.Advance(50 * time.Minute)
	second, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)

	f.clock.Advance(20 * time.Minute)
	assert.Equal(t, 1, f.svc.EvictIdle())

	f.svc.mu.Lock()
	_, firstLoaded := f.svc.machines[first.Snapshot.ID]
	_, secondLoaded := f.svc.machines[second.Snapshot.ID]
	f.svc.mu.Unlock()
	assert.False(t, firstLoaded)
	assert.True(t, secondLoaded)

	got, err := f.svc.GetDraft(ctx, "s-1", first.Snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Snapshot.ID, got.Snapshot.ID)
}

func TestService_DetachedSubmissionLandsInInbox(t *testing.T) {
	gateway := &stubGateway{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, gateway)

	view, err := f.svc.StartDraft(context.Background(), "s-1")
	require.NoError(t, err)
	draftID := view.Snapshot.ID
	f.fill(t, "s-1", draftID)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, "s-1", draftID)
		errCh <- err
	}()

	<-gateway.started
	cancel()
	assert.ErrorIs(t, <-errCh, draft.ErrSubmissionDetached)

	_, err = f.svc.ChooseVehicle(context.Background(), "s-1", draftID, domain.VehicleLarge)
	assert.ErrorIs(t, err, draft.ErrSubmissionInProgress)
	assert.Zero(t, f.svc.EvictIdle())

	close(gateway.release)

	require.Eventually(t, func() bool {
		return f.inbox.size("s-1") == 1
	}, time.Second, 10*time.Millisecond)

	items, err := f.svc.Notifications(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.NotificationBookingConfirmed, items[0].Kind)
	assert.Equal(t, draftID, items[0].DraftID)
	assert.NotEmpty(t, items[0].ConfirmationID)
	assert.Contains(t, items[0].Message, "Maintenance Wash")
	assert.Equal(t, domain.StateSubmitted, f.store.get(draftID).State)
}

func TestService_FailedSubmissionKeepsDraft(t *testing.T) {
	f := newFixture(t, &stubGateway{err: errors.New("mail server down")})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	f.fill(t, "s-1", view.Snapshot.ID)

	got, err := f.svc.Submit(ctx, "s-1", view.Snapshot.ID)
	require.ErrorIs(t, err, draft.ErrSubmission)
	require.NotNil(t, got)
	assert.Equal(t, domain.StateFailed, got.Snapshot.State)
	assert.NotNil(t, got.Snapshot.LastRequest)

	require.Eventually(t, func() bool {
		return f.store.get(view.Snapshot.ID).State == domain.StateFailed
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, f.inbox.size("s-1"))
}

func TestService_ExpiredSlotSendsDraftBackToSlotStep(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	draftID := view.Snapshot.ID
	f.fill(t, "s-1", draftID)

	f.clock.Advance(72 * time.Hour)

	got, err := f.svc.Submit(ctx, "s-1", draftID)
	require.ErrorIs(t, err, draft.ErrSlotUnavailable)
	require.NotNil(t, got)
	assert.Equal(t, domain.StateSlotChosen, got.Snapshot.State)
	assert.Equal(t, domain.StateSlotChosen, f.store.get(draftID).State)
	assert.NotNil(t, f.store.get(draftID).Draft.Contact)
}

func TestService_DiscardDraft(t *testing.T) {
	f := newFixture(t, &stubGateway{})
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	draftID := view.Snapshot.ID
	f.fill(t, "s-1", draftID)

	assert.ErrorIs(t, f.svc.DiscardDraft(ctx, "s-2", draftID), ErrAccessDenied)

	require.NoError(t, f.svc.DiscardDraft(ctx, "s-1", draftID))

	_, err = f.store.Get(ctx, draftID)
	assert.ErrorIs(t, err, draftsRepo.ErrDraftNotFound)

	_, err = f.svc.GetDraft(ctx, "s-1", draftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = f.svc.Submit(ctx, "s-1", draftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, f.svc.DiscardDraft(ctx, "s-1", draftID), ErrDraftNotFound)
}

func TestService_DiscardDraftWhileSubmitting(t *testing.T) {
	gateway := &stubGateway{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, gateway)
	ctx := context.Background()

	view, err := f.svc.StartDraft(ctx, "s-1")
	require.NoError(t, err)
	draftID := view.Snapshot.ID
	f.fill(t, "s-1", draftID)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, "s-1", draftID)
		done <- err
	}()
	<-gateway.started

	assert.ErrorIs(t, f.svc.DiscardDraft(ctx, "s-1", draftID), draft.ErrSubmissionInProgress)

	close(gateway.release)
	require.NoError(t, <-done)

	require.NoError(t, f.svc.DiscardDraft(ctx, "s-1", draftID))
}
