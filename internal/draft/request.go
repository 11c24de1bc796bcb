package draft

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// idempotencyNamespace пространство имен UUIDv5 для ключей идемпотентности
var idempotencyNamespace = uuid.MustParse("6f1c2a1e-8d4b-4c39-9a57-3b2d7e0f5c11")

// IdempotencyKey вычисляет ключ из ID черновика и его содержимого
// Одинаковое содержимое черновика всегда дает одинаковый ключ
func IdempotencyKey(draftID string, d domain.BookingDraft, total int64) string {
	parts := []string{
		draftID,
		string(d.VehicleClass),
		d.ServiceID,
		strings.Join(d.AddOnIDs, ","),
	}
	if d.Slot != nil {
		parts = append(parts, d.Slot.DateString(), d.Slot.Label)
	}
	if d.Contact != nil {
		parts = append(parts, d.Contact.Name, d.Contact.Email, d.Contact.Phone, d.Contact.Address)
	}
	parts = append(parts, strconv.FormatInt(total, 10))

	return uuid.NewSHA1(idempotencyNamespace, []byte(strings.Join(parts, "\x1f"))).String()
}

// buildRequest собирает неизменяемый запрос из полного черновика
func buildRequest(draftID string, d domain.BookingDraft, service domain.ServicePackage, price domain.PriceBreakdown, createdAt time.Time) domain.BookingRequest {
	addOns := append([]string{}, d.AddOnIDs...)

	return domain.BookingRequest{
		IdempotencyKey: IdempotencyKey(draftID, d, price.Total),
		DraftID:        draftID,
		VehicleClass:   d.VehicleClass,
		ServiceID:      d.ServiceID,
		ServiceTitle:   service.Title,
		AddOnIDs:       addOns,
		Slot:           *d.Slot,
		Contact:        *d.Contact,
		Price:          price.Clone(),
		CreatedAt:      createdAt,
	}
}
