package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ConfirmationCode string   `json:"confirmationCode"`
	VehicleClass     string   `json:"vehicleClass"`
	ServiceID        string   `json:"serviceId"`
	ServiceTitle     string   `json:"serviceTitle"`
	AddOnIDs         []string `json:"addOnIds"`
	Date             string   `json:"date"` // "2026-10-21"
	TimeLabel        string   `json:"timeLabel"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	BasePrice        int64    `json:"basePrice"`   // центы
	AddOnsTotal      int64    `json:"addOnsTotal"` // центы
	Total            int64    `json:"total"`       // центы
	TotalFormatted   string   `json:"totalFormatted"`
	Notified         bool     `json:"notified"`
	RequestedAt      string   `json:"requestedAt"`
	CreatedAt        string   `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	addOns := b.AddOnIDs
	if addOns == nil {
		addOns = []string{}
	}

	return &BookingResponse{
		ConfirmationCode: b.ConfirmationCode,
		VehicleClass:     string(b.VehicleClass),
		ServiceID:        b.ServiceID,
		ServiceTitle:     b.ServiceTitle,
		AddOnIDs:         addOns,
		Date:             b.Slot.DateString(),
		TimeLabel:        b.Slot.Label,
		Name:             b.Contact.Name,
		Email:            b.Contact.Email,
		Phone:            b.Contact.Phone,
		Address:          b.Contact.Address,
		BasePrice:        b.BasePrice,
		AddOnsTotal:      b.AddOnsTotal,
		Total:            b.Total,
		TotalFormatted:   domain.FormatCents(b.Total),
		Notified:         b.IsNotified(),
		RequestedAt:      b.RequestedAt.Format(time.RFC3339),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}
