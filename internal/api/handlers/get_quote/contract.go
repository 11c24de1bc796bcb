package get_quote

import "github.com/m04kA/SMC-DetailingService/internal/domain"

type PriceCalculator interface {
	ComputePrice(class domain.VehicleClass, serviceID string, addOnIDs []string) (domain.PriceBreakdown, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
