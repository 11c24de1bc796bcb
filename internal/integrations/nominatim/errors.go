package nominatim

import "errors"

var (
	// ErrInvalidQuery возвращается для слишком короткого запроса или некорректных координат
	ErrInvalidQuery = errors.New("nominatim client: invalid query")

	// ErrNotFound возвращается, когда по координатам не найден адрес
	ErrNotFound = errors.New("nominatim client: address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("nominatim client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("nominatim client: invalid response")
)
