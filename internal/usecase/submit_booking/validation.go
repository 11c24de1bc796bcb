package submit_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// validateRequest проверяет полноту запроса на бронирование
func validateRequest(req *domain.BookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if _, err := uuid.Parse(req.IdempotencyKey); err != nil {
		return fmt.Errorf("%w: idempotency key must be a UUID: %v", ErrInvalidRequest, err)
	}

	if req.DraftID == "" {
		return fmt.Errorf("%w: draft id is required", ErrInvalidRequest)
	}

	if !req.VehicleClass.IsValid() {
		return fmt.Errorf("%w: invalid vehicle class %q", ErrInvalidRequest, req.VehicleClass)
	}

	if req.ServiceID == "" || req.ServiceTitle == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidRequest)
	}

	if req.Slot.Date.IsZero() || req.Slot.Label == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidRequest)
	}

	if !req.Contact.IsComplete() {
		return fmt.Errorf("%w: contact is incomplete", ErrInvalidRequest)
	}

	// Итоговая сумма должна совпадать с разбивкой
	if req.Price.Total <= 0 || req.Price.Total != req.Price.BasePrice+req.Price.AddOnsTotal {
		return fmt.Errorf("%w: inconsistent price breakdown", ErrInvalidRequest)
	}

	if req.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created at is required", ErrInvalidRequest)
	}

	return nil
}

// ConfirmationCode вычисляет код подтверждения из ключа идемпотентности
// Повторная отправка того же запроса дает тот же код
func ConfirmationCode(idempotencyKey string) string {
	hex := strings.ReplaceAll(idempotencyKey, "-", "")
	if len(hex) > confirmationHexLen {
		hex = hex[:confirmationHexLen]
	}
	return confirmationPrefix + strings.ToUpper(hex)
}
