package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/email"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create сохраняет бронирование или возвращает существующее с тем же ключом идемпотентности
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, bool, error)
	// MarkNotified отмечает, что письма по бронированию отправлены
	MarkNotified(ctx context.Context, id int64, at time.Time) error
}

// EmailSender интерфейс отправки писем
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

// MetricsRecorder интерфейс для метрик бронирований
type MetricsRecorder interface {
	ObserveBookingSubmission(service, outcome string)
	ObserveBookingTotal(service, vehicleClass string, totalCents int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
