package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата вне окна записи
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда запрошено больше дней, чем окно записи
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
