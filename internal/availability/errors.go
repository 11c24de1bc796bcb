package availability

import "errors"

// ErrInvalidSchedule возвращается при некорректном списке слотов или окне бронирования
var ErrInvalidSchedule = errors.New("availability: invalid schedule")
