package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"idempotency_key",
	"confirmation_code",
	"draft_id",
	"vehicle_class",
	"service_id",
	"service_title",
	"add_on_ids",
	"slot_date",
	"slot_label",
	"contact_name",
	"contact_email",
	"contact_phone",
	"contact_address",
	"base_price_cents",
	"add_ons_total_cents",
	"total_cents",
	"requested_at",
	"notified_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// При конфликте по idempotency_key возвращает уже сохраненную запись и inserted=false
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, bool, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"idempotency_key",
			"confirmation_code",
			"draft_id",
			"vehicle_class",
			"service_id",
			"service_title",
			"add_on_ids",
			"slot_date",
			"slot_label",
			"contact_name",
			"contact_email",
			"contact_phone",
			"contact_address",
			"base_price_cents",
			"add_ons_total_cents",
			"total_cents",
			"requested_at",
		).
		Values(
			booking.IdempotencyKey,
			booking.ConfirmationCode,
			booking.DraftID,
			string(booking.VehicleClass),
			booking.ServiceID,
			booking.ServiceTitle,
			pq.Array(booking.AddOnIDs),
			domain.DateOnly(booking.Slot.Date),
			booking.Slot.Label,
			booking.Contact.Name,
			booking.Contact.Email,
			booking.Contact.Phone,
			booking.Contact.Address,
			booking.BasePrice,
			booking.AddOnsTotal,
			booking.Total,
			booking.RequestedAt,
		).
		// Пустой DO UPDATE нужен, чтобы RETURNING вернул существующую строку
		Suffix("ON CONFLICT (idempotency_key) DO UPDATE SET idempotency_key = EXCLUDED.idempotency_key " +
			"RETURNING " + strings.Join(bookingColumns, ", ") + ", (xmax = 0) AS inserted").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var inserted bool
	saved, err := scanBooking(r.db.QueryRowContext(ctx, query, args...), &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return saved, inserted, nil
}

// GetByConfirmationCode получает бронирование по коду подтверждения
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirmation_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByConfirmationCode - scan: %v", ErrScanRow, err)
	}

	return booking, nil
}

// MarkNotified фиксирует время отправки уведомлений
// Повторный вызов не перезаписывает ранее сохраненное время
func (r *Repository) MarkNotified(ctx context.Context, id int64, at time.Time) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("notified_at", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"notified_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNotified - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkNotified - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func scanBooking(row *sql.Row, extra ...interface{}) (*domain.Booking, error) {
	var booking domain.Booking
	var vehicleClass string
	var addOnIDs []string
	var requestedAt, notifiedAt, createdAt sql.NullTime

	dest := []interface{}{
		&booking.ID,
		&booking.IdempotencyKey,
		&booking.ConfirmationCode,
		&booking.DraftID,
		&vehicleClass,
		&booking.ServiceID,
		&booking.ServiceTitle,
		pq.Array(&addOnIDs),
		&booking.Slot.Date,
		&booking.Slot.Label,
		&booking.Contact.Name,
		&booking.Contact.Email,
		&booking.Contact.Phone,
		&booking.Contact.Address,
		&booking.BasePrice,
		&booking.AddOnsTotal,
		&booking.Total,
		&requestedAt,
		&notifiedAt,
		&createdAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	booking.VehicleClass = domain.VehicleClass(vehicleClass)
	booking.AddOnIDs = addOnIDs
	if booking.AddOnIDs == nil {
		booking.AddOnIDs = []string{}
	}
	booking.Slot.Date = domain.DateOnly(booking.Slot.Date)
	booking.RequestedAt = requestedAt.Time
	booking.CreatedAt = createdAt.Time
	if notifiedAt.Valid {
		t := notifiedAt.Time
		booking.NotifiedAt = &t
	}

	return &booking, nil
}
