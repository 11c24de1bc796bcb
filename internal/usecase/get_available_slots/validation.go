package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, windowDays int) error {
	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	if req.Days > windowDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	return nil
}
