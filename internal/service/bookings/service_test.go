package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/booking"
)

type fakeRepo struct {
	bookings map[string]*domain.Booking
	err      error
	lastCode string
}

func (r *fakeRepo) GetByConfirmationCode(_ context.Context, code string) (*domain.Booking, error) {
	r.lastCode = code
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[code]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeRepo) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: map[string]*domain.Booking{
		"BC-3F2B8C1D7E4A": {
			ID:               1,
			ConfirmationCode: "BC-3F2B8C1D7E4A",
			VehicleClass:     domain.VehicleLarge,
			ServiceID:        "full-exterior",
			ServiceTitle:     "Full Exterior Detail",
			Slot:             domain.NewTimeSlot(at.AddDate(0, 0, 2), "02:00 PM"),
			Contact:          domain.Contact{Name: "Jane Doe", Email: "Jane@Example.com"},
			BasePrice:        30000,
			Total:            30000,
			RequestedAt:      at,
			CreatedAt:        at,
		},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestService_GetByConfirmationCode(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.GetByConfirmationCode(context.Background(), " bc-3f2b8c1d7e4a ", "jane@example.com")
	require.NoError(t, err)

	assert.Equal(t, "BC-3F2B8C1D7E4A", repo.lastCode)
	assert.Equal(t, "Full Exterior Detail", resp.ServiceTitle)
	assert.Equal(t, "2026-10-21", resp.Date)
	assert.Equal(t, "$300", resp.TotalFormatted)
	assert.Equal(t, []string{}, resp.AddOnIDs)
	assert.False(t, resp.Notified)
}

func TestService_GetByConfirmationCode_Errors(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	_, err := svc.GetByConfirmationCode(ctx, "", "jane@example.com")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByConfirmationCode(ctx, "BC-000000000000", "jane@example.com")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByConfirmationCode(ctx, "BC-3F2B8C1D7E4A", "someone@example.com")
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.err = errors.New("connection refused")
	_, err = svc.GetByConfirmationCode(ctx, "BC-3F2B8C1D7E4A", "jane@example.com")
	assert.ErrorIs(t, err, ErrInternal)
}
