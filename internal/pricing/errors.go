package pricing

import "errors"

var (
	// ErrUnknownService возвращается, когда услуги нет в каталоге
	ErrUnknownService = errors.New("pricing: unknown service")

	// ErrInvalidAddOn возвращается, когда ID не является дополнительной услугой
	ErrInvalidAddOn = errors.New("pricing: invalid add-on")

	// ErrInvalidVehicleClass возвращается для неподдерживаемого класса автомобиля
	ErrInvalidVehicleClass = errors.New("pricing: invalid vehicle class")
)
