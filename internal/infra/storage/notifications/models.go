package notifications

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type notificationRecord struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	DraftID        string    `json:"draftId"`
	ConfirmationID string    `json:"confirmationId,omitempty"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toRecord(n domain.Notification) notificationRecord {
	return notificationRecord{
		ID:             n.ID,
		Kind:           string(n.Kind),
		DraftID:        n.DraftID,
		ConfirmationID: n.ConfirmationID,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
}

func (r notificationRecord) toDomain() domain.Notification {
	return domain.Notification{
		ID:             r.ID,
		Kind:           domain.NotificationKind(r.Kind),
		DraftID:        r.DraftID,
		ConfirmationID: r.ConfirmationID,
		Message:        r.Message,
		CreatedAt:      r.CreatedAt,
	}
}
