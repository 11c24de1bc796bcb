package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// DraftView снимок черновика с текущей стоимостью (если ее можно посчитать)
type DraftView struct {
	Snapshot domain.DraftSnapshot
	Price    *domain.PriceBreakdown
}

// Response модели

// DraftResponse ответ с данными черновика
type DraftResponse struct {
	ID             string           `json:"id"`
	State          string           `json:"state"`
	VehicleClass   string           `json:"vehicleClass,omitempty"`
	ServiceID      string           `json:"serviceId,omitempty"`
	AddOnIDs       []string         `json:"addOnIds"`
	Slot           *SlotResponse    `json:"slot,omitempty"`
	Contact        *ContactResponse `json:"contact,omitempty"`
	Price          *PriceResponse   `json:"price,omitempty"`
	ConfirmationID string           `json:"confirmationId,omitempty"`
	LastError      string           `json:"lastError,omitempty"`
	Submitting     bool             `json:"submitting"`
	ReadyAt        *string          `json:"readyAt,omitempty"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// SlotResponse выбранный слот
type SlotResponse struct {
	Date  string `json:"date"` // "2026-10-21"
	Label string `json:"label"`
}

// ContactResponse контактные данные клиента
type ContactResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PriceResponse расчет стоимости (суммы в центах)
type PriceResponse struct {
	BasePrice      int64          `json:"basePrice"`
	AddOnsTotal    int64          `json:"addOnsTotal"`
	Total          int64          `json:"total"`
	TotalFormatted string         `json:"totalFormatted"`
	Lines          []LineResponse `json:"lines"`
}

// LineResponse строка расчета
type LineResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
}

// NotificationResponse уведомление о результате отправки
type NotificationResponse struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	DraftID        string `json:"draftId"`
	ConfirmationID string `json:"confirmationId,omitempty"`
	Message        string `json:"message"`
	CreatedAt      string `json:"createdAt"`
}

// FromDraftView конвертирует DraftView в DraftResponse
func FromDraftView(v *DraftView) *DraftResponse {
	s := v.Snapshot
	addOns := s.Draft.AddOnIDs
	if addOns == nil {
		addOns = []string{}
	}

	resp := &DraftResponse{
		ID:             s.ID,
		State:          string(s.State),
		VehicleClass:   string(s.Draft.VehicleClass),
		ServiceID:      s.Draft.ServiceID,
		AddOnIDs:       addOns,
		ConfirmationID: s.ConfirmationID,
		LastError:      s.LastError,
		Submitting:     s.Submitting,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}

	if s.Draft.Slot != nil {
		resp.Slot = &SlotResponse{Date: s.Draft.Slot.DateString(), Label: s.Draft.Slot.Label}
	}
	if c := s.Draft.Contact; c != nil {
		resp.Contact = &ContactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
	}
	if v.Price != nil {
		resp.Price = FromPriceBreakdown(*v.Price)
	}
	if s.ReadyAt != nil {
		readyAt := s.ReadyAt.Format(time.RFC3339)
		resp.ReadyAt = &readyAt
	}
	return resp
}

// FromPriceBreakdown конвертирует domain.PriceBreakdown в PriceResponse
func FromPriceBreakdown(p domain.PriceBreakdown) *PriceResponse {
	lines := make([]LineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, LineResponse{
			ID:              l.ID,
			Title:           l.Title,
			Amount:          l.Amount,
			AmountFormatted: domain.FormatCents(l.Amount),
		})
	}

	return &PriceResponse{
		BasePrice:      p.BasePrice,
		AddOnsTotal:    p.AddOnsTotal,
		Total:          p.Total,
		TotalFormatted: domain.FormatCents(p.Total),
		Lines:          lines,
	}
}

// FromNotifications конвертирует список уведомлений
func FromNotifications(items []domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		result = append(result, NotificationResponse{
			ID:             n.ID,
			Kind:           string(n.Kind),
			DraftID:        n.DraftID,
			ConfirmationID: n.ConfirmationID,
			Message:        n.Message,
			CreatedAt:      n.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
