package domain

import (
	"sort"
	"time"
)

// DraftState represents the progress of a booking draft
type DraftState string

const (
	StateIdle          DraftState = "idle"
	StateVehicleChosen DraftState = "vehicle_chosen"
	StateServiceChosen DraftState = "service_chosen"
	StateSlotChosen    DraftState = "slot_chosen"
	StateReadyToSubmit DraftState = "ready_to_submit"
	StateSubmitted     DraftState = "submitted"
	StateFailed        DraftState = "failed"
)

// Rank returns the number of completed steps; Failed counts as ReadyToSubmit
func (s DraftState) Rank() int {
	switch s {
	case StateIdle:
		return 0
	case StateVehicleChosen:
		return 1
	case StateServiceChosen:
		return 2
	case StateSlotChosen:
		return 3
	case StateReadyToSubmit, StateFailed:
		return 4
	case StateSubmitted:
		return 5
	}
	return -1
}

// IsValid returns true if the state is known
func (s DraftState) IsValid() bool {
	return s.Rank() >= 0
}

// IsTerminal returns true if the draft can no longer be changed
func (s DraftState) IsTerminal() bool {
	return s == StateSubmitted
}

// BookingDraft is the in-progress booking
// The structure permits partial states; step ordering is enforced by the state machine
type BookingDraft struct {
	VehicleClass VehicleClass // empty until chosen
	ServiceID    string       // empty until chosen
	AddOnIDs     []string     // unique, sorted
	Slot         *TimeSlot
	Contact      *Contact
}

// HasAddOn returns true if the add-on is selected
func (d BookingDraft) HasAddOn(id string) bool {
	i := sort.SearchStrings(d.AddOnIDs, id)
	return i < len(d.AddOnIDs) && d.AddOnIDs[i] == id
}

// Clone returns a deep copy of the draft
func (d BookingDraft) Clone() BookingDraft {
	clone := BookingDraft{
		VehicleClass: d.VehicleClass,
		ServiceID:    d.ServiceID,
	}
	if d.AddOnIDs != nil {
		clone.AddOnIDs = append(make([]string, 0, len(d.AddOnIDs)), d.AddOnIDs...)
	}
	if d.Slot != nil {
		slot := *d.Slot
		clone.Slot = &slot
	}
	if d.Contact != nil {
		contact := *d.Contact
		clone.Contact = &contact
	}
	return clone
}

// DraftSnapshot is a serializable view of a draft machine
type DraftSnapshot struct {
	ID             string
	SessionID      string
	State          DraftState
	Draft          BookingDraft
	ReadyAt        *time.Time // moment the draft last became ready to submit
	LastRequest    *BookingRequest
	ConfirmationID string
	LastError      string
	Submitting     bool // not persisted
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone returns a deep copy of the snapshot
func (s DraftSnapshot) Clone() DraftSnapshot {
	clone := s
	clone.Draft = s.Draft.Clone()
	if s.ReadyAt != nil {
		readyAt := *s.ReadyAt
		clone.ReadyAt = &readyAt
	}
	if s.LastRequest != nil {
		request := s.LastRequest.Clone()
		clone.LastRequest = &request
	}
	return clone
}
