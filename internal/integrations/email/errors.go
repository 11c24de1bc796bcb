package email

import "errors"

var (
	// ErrNotConfigured возвращается, когда клиент SendGrid не настроен
	ErrNotConfigured = errors.New("email client: not configured")

	// ErrInvalidMessage возвращается при некорректном письме
	ErrInvalidMessage = errors.New("email client: invalid message")

	// ErrDeliveryFailed возвращается при ошибке доставки письма
	ErrDeliveryFailed = errors.New("email client: delivery failed")
)
