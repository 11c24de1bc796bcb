package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// AvailabilityProvider интерфейс провайдера доступных дат и времени
type AvailabilityProvider interface {
	WindowDays() int
	ListDates(now time.Time, windowDays int) []time.Time
	ListTimeSlotLabels() []string
	IsSlotBookable(now time.Time, slot domain.TimeSlot) bool
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
