package catalog

import "errors"

var (
	// ErrNotFound возвращается, когда пакет услуг не найден в каталоге
	ErrNotFound = errors.New("catalog: service package not found")

	// ErrInvalidCatalog возвращается при некорректном наборе пакетов
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
