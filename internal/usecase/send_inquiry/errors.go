package send_inquiry

import "errors"

var (
	// ErrInvalidInquiry возвращается при некорректных полях формы
	ErrInvalidInquiry = errors.New("send_inquiry: invalid inquiry")

	// ErrDeliveryFailed возвращается, когда письмо бизнесу не отправлено
	ErrDeliveryFailed = errors.New("send_inquiry: failed to deliver inquiry")
)
