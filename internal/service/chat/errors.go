package chat

import "errors"

var (
	// ErrInvalidMessage возвращается для пустого или слишком длинного сообщения
	ErrInvalidMessage = errors.New("chat: invalid message")

	// ErrInvalidSession возвращается при пустом идентификаторе сессии
	ErrInvalidSession = errors.New("chat: invalid session id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("chat: internal error")
)
