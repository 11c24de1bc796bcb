package submit_draft

import "github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"

// SubmitResponse HTTP response model результата отправки
type SubmitResponse struct {
	Status         string                `json:"status"` // confirmed, pending, failed
	ConfirmationID string                `json:"confirmationId,omitempty"`
	Message        string                `json:"message"`
	Draft          *models.DraftResponse `json:"draft,omitempty"`
}

const (
	statusConfirmed = "confirmed"
	statusPending   = "pending"
	statusFailed    = "failed"
)
