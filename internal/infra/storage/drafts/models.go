package drafts

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// snapshotRecord JSON представление снимка черновика в Redis
type snapshotRecord struct {
	ID             string         `json:"id"`
	SessionID      string         `json:"sessionId"`
	State          string         `json:"state"`
	Draft          draftRecord    `json:"draft"`
	ReadyAt        *time.Time     `json:"readyAt,omitempty"`
	LastRequest    *requestRecord `json:"lastRequest,omitempty"`
	ConfirmationID string         `json:"confirmationId,omitempty"`
	LastError      string         `json:"lastError,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type draftRecord struct {
	VehicleClass string         `json:"vehicleClass,omitempty"`
	ServiceID    string         `json:"serviceId,omitempty"`
	AddOnIDs     []string       `json:"addOnIds"`
	Slot         *slotRecord    `json:"slot,omitempty"`
	Contact      *contactRecord `json:"contact,omitempty"`
}

type slotRecord struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Label string `json:"label"`
}

type contactRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type lineRecord struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
}

type requestRecord struct {
	IdempotencyKey string        `json:"idempotencyKey"`
	DraftID        string        `json:"draftId"`
	VehicleClass   string        `json:"vehicleClass"`
	ServiceID      string        `json:"serviceId"`
	ServiceTitle   string        `json:"serviceTitle"`
	AddOnIDs       []string      `json:"addOnIds"`
	Slot           slotRecord    `json:"slot"`
	Contact        contactRecord `json:"contact"`
	BasePrice      int64         `json:"basePrice"`
	AddOnsTotal    int64         `json:"addOnsTotal"`
	Total          int64         `json:"total"`
	Lines          []lineRecord  `json:"lines"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func toRecord(s domain.DraftSnapshot) snapshotRecord {
	rec := snapshotRecord{
		ID:             s.ID,
		SessionID:      s.SessionID,
		State:          string(s.State),
		ReadyAt:        s.ReadyAt,
		ConfirmationID: s.ConfirmationID,
		LastError:      s.LastError,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Draft: draftRecord{
			VehicleClass: string(s.Draft.VehicleClass),
			ServiceID:    s.Draft.ServiceID,
			AddOnIDs:     s.Draft.AddOnIDs,
		},
	}
	if rec.Draft.AddOnIDs == nil {
		rec.Draft.AddOnIDs = []string{}
	}
	if s.Draft.Slot != nil {
		slot := toSlotRecord(*s.Draft.Slot)
		rec.Draft.Slot = &slot
	}
	if s.Draft.Contact != nil {
		contact := toContactRecord(*s.Draft.Contact)
		rec.Draft.Contact = &contact
	}
	if s.LastRequest != nil {
		req := toRequestRecord(*s.LastRequest)
		rec.LastRequest = &req
	}
	return rec
}

func toSlotRecord(s domain.TimeSlot) slotRecord {
	return slotRecord{Date: s.DateString(), Label: s.Label}
}

func toContactRecord(c domain.Contact) contactRecord {
	return contactRecord{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func toRequestRecord(r domain.BookingRequest) requestRecord {
	lines := make([]lineRecord, 0, len(r.Price.Lines))
	for _, l := range r.Price.Lines {
		lines = append(lines, lineRecord{ID: l.ID, Title: l.Title, Amount: l.Amount})
	}
	addOns := r.AddOnIDs
	if addOns == nil {
		addOns = []string{}
	}

	return requestRecord{
		IdempotencyKey: r.IdempotencyKey,
		DraftID:        r.DraftID,
		VehicleClass:   string(r.VehicleClass),
		ServiceID:      r.ServiceID,
		ServiceTitle:   r.ServiceTitle,
		AddOnIDs:       addOns,
		Slot:           toSlotRecord(r.Slot),
		Contact:        toContactRecord(r.Contact),
		BasePrice:      r.Price.BasePrice,
		AddOnsTotal:    r.Price.AddOnsTotal,
		Total:          r.Price.Total,
		Lines:          lines,
		CreatedAt:      r.CreatedAt,
	}
}

func (r snapshotRecord) toDomain() (domain.DraftSnapshot, error) {
	s := domain.DraftSnapshot{
		ID:             r.ID,
		SessionID:      r.SessionID,
		State:          domain.DraftState(r.State),
		ReadyAt:        r.ReadyAt,
		ConfirmationID: r.ConfirmationID,
		LastError:      r.LastError,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Draft: domain.BookingDraft{
			VehicleClass: domain.VehicleClass(r.Draft.VehicleClass),
			ServiceID:    r.Draft.ServiceID,
			AddOnIDs:     r.Draft.AddOnIDs,
		},
	}
	if s.Draft.AddOnIDs == nil {
		s.Draft.AddOnIDs = []string{}
	}
	if r.Draft.Slot != nil {
		slot, err := r.Draft.Slot.toDomain()
		if err != nil {
			return domain.DraftSnapshot{}, err
		}
		s.Draft.Slot = &slot
	}
	if r.Draft.Contact != nil {
		contact := r.Draft.Contact.toDomain()
		s.Draft.Contact = &contact
	}
	if r.LastRequest != nil {
		req, err := r.LastRequest.toDomain()
		if err != nil {
			return domain.DraftSnapshot{}, err
		}
		s.LastRequest = &req
	}
	return s, nil
}

func (r slotRecord) toDomain() (domain.TimeSlot, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.TimeSlot{}, err
	}
	return domain.NewTimeSlot(date, r.Label), nil
}

func (r contactRecord) toDomain() domain.Contact {
	return domain.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func (r requestRecord) toDomain() (domain.BookingRequest, error) {
	slot, err := r.Slot.toDomain()
	if err != nil {
		return domain.BookingRequest{}, err
	}

	lines := make([]domain.LineItem, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.LineItem{ID: l.ID, Title: l.Title, Amount: l.Amount})
	}
	addOns := r.AddOnIDs
	if addOns == nil {
		addOns = []string{}
	}

	return domain.BookingRequest{
		IdempotencyKey: r.IdempotencyKey,
		DraftID:        r.DraftID,
		VehicleClass:   domain.VehicleClass(r.VehicleClass),
		ServiceID:      r.ServiceID,
		ServiceTitle:   r.ServiceTitle,
		AddOnIDs:       addOns,
		Slot:           slot,
		Contact:        r.Contact.toDomain(),
		Price: domain.PriceBreakdown{
			BasePrice:   r.BasePrice,
			AddOnsTotal: r.AddOnsTotal,
			Total:       r.Total,
			Lines:       lines,
		},
		CreatedAt: r.CreatedAt,
	}, nil
}
