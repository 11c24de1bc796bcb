package geocode_address

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/integrations/nominatim"
)

type Geocoder interface {
	Search(ctx context.Context, query, postcode string) ([]nominatim.Address, error)
	Reverse(ctx context.Context, lat, lon float64) (*nominatim.Address, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
