package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

var (
	requestedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	createdAt   = time.Date(2026, 10, 19, 9, 30, 1, 0, time.UTC)
	slotDate    = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		IdempotencyKey:   "3f2b8c1d-7e4a-5b9c-8d2e-1a0f9e8d7c6b",
		ConfirmationCode: "BC-3F2B8C1D7E4A",
		DraftID:          "draft-1",
		VehicleClass:     domain.VehicleLarge,
		ServiceID:        "full-interior",
		ServiceTitle:     "Full Interior Detail",
		AddOnIDs:         []string{"engine-bay"},
		Slot:             domain.NewTimeSlot(slotDate, "10:00 AM"),
		Contact: domain.Contact{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "(951) 555-0142",
			Address: "123 Main St, Riverside, CA 92501",
		},
		BasePrice:   20000,
		AddOnsTotal: 12500,
		Total:       32500,
		RequestedAt: requestedAt,
	}
}

func bookingRow(notifiedAt interface{}, extra ...driver.Value) *sqlmock.Rows {
	columns := append([]string{}, bookingColumns...)
	values := []driver.Value{
		int64(7), "3f2b8c1d-7e4a-5b9c-8d2e-1a0f9e8d7c6b", "BC-3F2B8C1D7E4A", "draft-1", "large",
		"full-interior", "Full Interior Detail", "{engine-bay}", slotDate, "10:00 AM",
		"Jane Doe", "jane@example.com", "(951) 555-0142", "123 Main St, Riverside, CA 92501",
		int64(20000), int64(12500), int64(32500), requestedAt, notifiedAt, createdAt,
	}
	if len(extra) > 0 {
		columns = append(columns, "inserted")
		values = append(values, extra...)
	}
	return sqlmock.NewRows(columns).AddRow(values...)
}

func TestRepository_CreateInserted(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (idempotency_key,confirmation_code")).
		WithArgs(
			"3f2b8c1d-7e4a-5b9c-8d2e-1a0f9e8d7c6b", "BC-3F2B8C1D7E4A", "draft-1", "large", "full-interior",
			"Full Interior Detail", sqlmock.AnyArg(), slotDate, "10:00 AM", "Jane Doe", "jane@example.com",
			"(951) 555-0142", "123 Main St, Riverside, CA 92501", int64(20000), int64(12500), int64(32500), requestedAt,
		).
		WillReturnRows(bookingRow(nil, true))

	saved, inserted, err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)

	assert.True(t, inserted)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, domain.VehicleLarge, saved.VehicleClass)
	assert.Equal(t, []string{"engine-bay"}, saved.AddOnIDs)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.False(t, saved.IsNotified())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateConflictReturnsExisting(t *testing.T) {
	repo, mock := newMock(t)
	notifiedAt := time.Date(2026, 10, 19, 9, 31, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (idempotency_key) DO UPDATE")).
		WillReturnRows(bookingRow(notifiedAt, false))

	saved, inserted, err := repo.Create(context.Background(), testBooking())
	require.NoError(t, err)

	assert.False(t, inserted)
	require.True(t, saved.IsNotified())
	assert.Equal(t, notifiedAt, *saved.NotifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(sql.ErrConnDone)

	_, _, err := repo.Create(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByConfirmationCode(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE confirmation_code = $1")).
		WithArgs("BC-3F2B8C1D7E4A").
		WillReturnRows(bookingRow(nil))

	b, err := repo.GetByConfirmationCode(context.Background(), "BC-3F2B8C1D7E4A")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", b.Contact.Name)
	assert.True(t, b.Slot.Equal(domain.NewTimeSlot(slotDate, "10:00 AM")))

	mock.ExpectQuery("FROM bookings").WithArgs("BC-MISSING").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByConfirmationCode(context.Background(), "BC-MISSING")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkNotified(t *testing.T) {
	repo, mock := newMock(t)
	at := time.Date(2026, 10, 19, 9, 31, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET notified_at = $1 WHERE id = $2 AND notified_at IS NULL")).
		WithArgs(at, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkNotified(context.Background(), 7, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
