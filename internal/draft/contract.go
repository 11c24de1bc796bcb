package draft

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetService(id string) (domain.ServicePackage, error)
}

// Pricing интерфейс калькулятора стоимости
type Pricing interface {
	ComputePrice(class domain.VehicleClass, serviceID string, addOnIDs []string) (domain.PriceBreakdown, error)
}

// Availability интерфейс провайдера доступных слотов
type Availability interface {
	IsSlotBookable(now time.Time, slot domain.TimeSlot) bool
}

// Gateway внешняя граница отправки бронирования
// Повторный вызов с тем же IdempotencyKey должен возвращать тот же результат
type Gateway interface {
	Submit(ctx context.Context, req *domain.BookingRequest) (confirmationID string, err error)
}

// Listener получает результат каждой завершенной отправки
// Вызывается из горутины отправки, в том числе после отсоединения вызывающего кода
type Listener interface {
	SubmissionCompleted(ctx context.Context, result SubmissionResult)
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
// Location задает часовой пояс, в котором определяется "сегодня"
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе провайдера
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
