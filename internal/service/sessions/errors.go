package sessions

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден ни в памяти, ни в хранилище
	ErrDraftNotFound = errors.New("sessions: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другой сессии
	ErrAccessDenied = errors.New("sessions: access denied")

	// ErrInvalidSession возвращается при пустом идентификаторе сессии
	ErrInvalidSession = errors.New("sessions: invalid session id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
