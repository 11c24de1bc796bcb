package draft

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/pricing"
)

var (
	// ErrInvalidVehicleClass возвращается для неподдерживаемого класса автомобиля
	ErrInvalidVehicleClass = errors.New("draft: invalid vehicle class")

	// ErrUnknownService возвращается, когда услуги нет среди основных пакетов
	ErrUnknownService = errors.New("draft: unknown service")

	// ErrInvalidAddOn возвращается, когда ID не является дополнительной услугой
	ErrInvalidAddOn = errors.New("draft: invalid add-on")

	// ErrSlotUnavailable возвращается, когда слот недоступен для записи
	ErrSlotUnavailable = errors.New("draft: slot unavailable")

	// ErrInvalidContact возвращается при некорректных контактных данных
	ErrInvalidContact = errors.New("draft: invalid contact")

	// ErrStepOutOfOrder возвращается при нарушении порядка шагов
	ErrStepOutOfOrder = errors.New("draft: step out of order")

	// ErrAlreadySubmitted возвращается при любом изменении отправленного черновика
	ErrAlreadySubmitted = errors.New("draft: already submitted")

	// ErrSubmissionInProgress возвращается, пока отправка черновика не завершена
	ErrSubmissionInProgress = errors.New("draft: submission in progress")

	// ErrSubmissionDetached возвращается, когда контекст вызывающего кода завершился раньше отправки
	// Отправка продолжается, результат получит Listener
	ErrSubmissionDetached = errors.New("draft: submission continues in background")

	// ErrSubmission возвращается при ошибке внешнего шлюза; черновик сохраняется для повтора
	ErrSubmission = errors.New("draft: submission failed")

	// ErrDiscarded возвращается при обращении к удаленному черновику
	ErrDiscarded = errors.New("draft: discarded")

	// ErrInvalidSnapshot возвращается при восстановлении из несогласованного снимка
	ErrInvalidSnapshot = errors.New("draft: invalid snapshot")
)

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrUnknownService):
		return fmt.Errorf("%w: %v", ErrUnknownService, err)
	case errors.Is(err, pricing.ErrInvalidAddOn):
		return fmt.Errorf("%w: %v", ErrInvalidAddOn, err)
	case errors.Is(err, pricing.ErrInvalidVehicleClass):
		return fmt.Errorf("%w: %v", ErrInvalidVehicleClass, err)
	}
	return err
}
