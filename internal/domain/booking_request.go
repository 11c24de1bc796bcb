package domain

import "time"

// LineItem is a single priced row of a breakdown
type LineItem struct {
	ID     string
	Title  string
	Amount int64 // cents
}

// PriceBreakdown is the computed price of a selection
// Lines holds the base package first, then add-ons sorted by id
type PriceBreakdown struct {
	BasePrice   int64
	AddOnsTotal int64
	Total       int64
	Lines       []LineItem
}

// Clone returns a deep copy of the breakdown
func (p PriceBreakdown) Clone() PriceBreakdown {
	clone := p
	if p.Lines != nil {
		clone.Lines = append(make([]LineItem, 0, len(p.Lines)), p.Lines...)
	}
	return clone
}

// BookingRequest is the immutable unit handed to the submission gateway
type BookingRequest struct {
	IdempotencyKey string
	DraftID        string
	VehicleClass   VehicleClass
	ServiceID      string
	ServiceTitle   string
	AddOnIDs       []string
	Slot           TimeSlot
	Contact        Contact
	Price          PriceBreakdown
	CreatedAt      time.Time
}

// Clone returns a deep copy of the request
func (r BookingRequest) Clone() BookingRequest {
	clone := r
	if r.AddOnIDs != nil {
		clone.AddOnIDs = append(make([]string, 0, len(r.AddOnIDs)), r.AddOnIDs...)
	}
	clone.Price = r.Price.Clone()
	return clone
}
