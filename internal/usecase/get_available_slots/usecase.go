package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// dayTitleFormat формат подписи даты, как в мастере записи: "Tue, Oct 20"
const dayTitleFormat = "Mon, Jan 2"

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	availability AvailabilityProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Окно дат строится от календарной даты в часовом поясе location
func NewUseCase(availability AvailabilityProvider, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{Location: location},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: days=%d, date=%v", req.Days, req.Date)

	windowDays := uc.availability.WindowDays()

	// 1. Валидация входных данных
	if err := validateRequest(req, windowDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	labels := uc.availability.ListTimeSlotLabels()

	// 3. Конкретная дата: проверяем, что она в окне записи
	if req.Date != nil {
		date := domain.DateOnly(*req.Date)
		if len(labels) == 0 || !uc.availability.IsSlotBookable(now, domain.NewTimeSlot(date, labels[0])) {
			uc.logger.Warn("GetAvailableSlots: date %s is outside the booking window", date.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date.Format(domain.DateFormat))
		}
		return &Response{
			WindowDays: windowDays,
			Days:       []Day{newDay(date, labels)},
		}, nil
	}

	// 4. Формируем окно записи
	days := req.Days
	if days == 0 {
		days = windowDays
	}

	dates := uc.availability.ListDates(now, days)
	result := make([]Day, 0, len(dates))
	for _, date := range dates {
		result = append(result, newDay(date, labels))
	}

	uc.logger.Info("GetAvailableSlots: returned %d days with %d slots each", len(result), len(labels))
	return &Response{
		WindowDays: windowDays,
		Days:       result,
	}, nil
}

func newDay(date time.Time, labels []string) Day {
	return Day{
		Date:  date,
		Title: date.Format(dayTitleFormat),
		Slots: append(make([]string, 0, len(labels)), labels...),
	}
}
