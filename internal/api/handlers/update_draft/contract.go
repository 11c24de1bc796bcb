package update_draft

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

type DraftService interface {
	ChooseVehicle(ctx context.Context, sessionID, draftID string, class domain.VehicleClass) (*models.DraftView, error)
	ChooseService(ctx context.Context, sessionID, draftID, serviceID string) (*models.DraftView, error)
	ToggleAddOn(ctx context.Context, sessionID, draftID, addOnID string) (*models.DraftView, error)
	ChooseSlot(ctx context.Context, sessionID, draftID string, date time.Time, label string) (*models.DraftView, error)
	ProvideContact(ctx context.Context, sessionID, draftID string, contact domain.Contact) (*models.DraftView, error)
	GoBack(ctx context.Context, sessionID, draftID string) (*models.DraftView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
