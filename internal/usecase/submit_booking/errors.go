package submit_booking

import "errors"

var (
	// ErrInvalidRequest возвращается при неполном запросе (ошибка вызывающего кода)
	ErrInvalidRequest = errors.New("submit_booking: invalid booking request")

	// ErrNotificationFailed возвращается, когда бизнес не получил уведомление о бронировании
	ErrNotificationFailed = errors.New("submit_booking: failed to notify business")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
