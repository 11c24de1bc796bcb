package geocode_address

import "github.com/m04kA/SMC-DetailingService/internal/integrations/nominatim"

// SuggestionsResponse HTTP response model подсказок адреса
type SuggestionsResponse struct {
	Suggestions []nominatim.Address `json:"suggestions"`
}
