package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Provider генерирует окно доступных дат и фиксированный список времени записи
// Текущее время всегда передается вызывающим кодом
type Provider struct {
	labels     []string
	labelSet   map[string]struct{}
	windowDays int
}

// New создает провайдер со списком меток времени и размером окна бронирования в днях
func New(labels []string, windowDays int) (*Provider, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no time slots", ErrInvalidSchedule)
	}
	if windowDays < domain.MinWindowDays || windowDays > domain.MaxWindowDays {
		return nil, fmt.Errorf("%w: window must be %d..%d days, got %d",
			ErrInvalidSchedule, domain.MinWindowDays, domain.MaxWindowDays, windowDays)
	}

	p := &Provider{
		labels:     make([]string, 0, len(labels)),
		labelSet:   make(map[string]struct{}, len(labels)),
		windowDays: windowDays,
	}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("%w: empty time slot label", ErrInvalidSchedule)
		}
		if _, ok := p.labelSet[label]; ok {
			return nil, fmt.Errorf("%w: duplicate time slot %q", ErrInvalidSchedule, label)
		}
		p.labelSet[label] = struct{}{}
		p.labels = append(p.labels, label)
	}

	return p, nil
}

// NewDefault создает провайдер с окном 14 дней и стандартным расписанием
func NewDefault() *Provider {
	p, err := New(domain.DefaultTimeSlotLabels, domain.DefaultWindowDays)
	if err != nil {
		panic(fmt.Sprintf("availability: default schedule is invalid: %v", err))
	}
	return p
}

// WindowDays возвращает размер окна бронирования
func (p *Provider) WindowDays() int {
	return p.windowDays
}

// ListDates возвращает windowDays последовательных дат начиная с календарной даты now
func (p *Provider) ListDates(now time.Time, windowDays int) []time.Time {
	if windowDays <= 0 {
		return []time.Time{}
	}

	start := domain.DateOnly(now)
	dates := make([]time.Time, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// ListTimeSlotLabels возвращает метки времени записи в порядке следования
func (p *Provider) ListTimeSlotLabels() []string {
	return append([]string(nil), p.labels...)
}

// IsSlotBookable проверяет, что дата входит в окно от now и метка есть в расписании
// Загрузка не учитывается: любой слот в окне считается свободным
func (p *Provider) IsSlotBookable(now time.Time, slot domain.TimeSlot) bool {
	if _, ok := p.labelSet[slot.Label]; !ok {
		return false
	}

	start := domain.DateOnly(now)
	end := start.AddDate(0, 0, p.windowDays)
	date := domain.DateOnly(slot.Date)

	return !date.Before(start) && date.Before(end)
}
