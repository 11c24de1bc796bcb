package notifications

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации уведомления
	ErrEncode = errors.New("notifications.repository: failed to encode notification")

	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("notifications.repository: storage error")
)
