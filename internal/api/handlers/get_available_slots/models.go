package get_available_slots

import (
	"strconv"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	WindowDays int            `json:"windowDays"`
	Days       []AvailableDay `json:"days"`
}

// AvailableDay дата записи со списком времени
type AvailableDay struct {
	Date  string   `json:"date"`  // "2026-10-21"
	Title string   `json:"title"` // "Wed, Oct 21"
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, day := range resp.Days {
		slots := day.Slots
		if slots == nil {
			slots = []string{}
		}
		days[i] = AvailableDay{
			Date:  day.Date.Format(domain.DateFormat),
			Title: day.Title,
			Slots: slots,
		}
	}

	return &AvailableSlotsResponse{
		WindowDays: resp.WindowDays,
		Days:       days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(daysStr, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	if dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
