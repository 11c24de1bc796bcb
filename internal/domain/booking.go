package domain

import "time"

// Booking represents a submitted booking stored in the system
type Booking struct {
	ID               int64
	IdempotencyKey   string
	ConfirmationCode string
	DraftID          string

	// Denormalized data for history
	VehicleClass VehicleClass
	ServiceID    string
	ServiceTitle string
	AddOnIDs     []string
	Slot         TimeSlot
	Contact      Contact

	BasePrice   int64
	AddOnsTotal int64
	Total       int64

	RequestedAt time.Time
	NotifiedAt  *time.Time
	CreatedAt   time.Time
}

// IsNotified returns true if notification emails were delivered
func (b *Booking) IsNotified() bool {
	return b.NotifiedAt != nil
}

// NewBookingFromRequest builds a record to persist from a booking request
func NewBookingFromRequest(req *BookingRequest, confirmationCode string) *Booking {
	return &Booking{
		IdempotencyKey:   req.IdempotencyKey,
		ConfirmationCode: confirmationCode,
		DraftID:          req.DraftID,
		VehicleClass:     req.VehicleClass,
		ServiceID:        req.ServiceID,
		ServiceTitle:     req.ServiceTitle,
		AddOnIDs:         append([]string{}, req.AddOnIDs...),
		Slot:             req.Slot,
		Contact:          req.Contact,
		BasePrice:        req.Price.BasePrice,
		AddOnsTotal:      req.Price.AddOnsTotal,
		Total:            req.Price.Total,
		RequestedAt:      req.CreatedAt,
	}
}
