package geocode_address

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/nominatim"
)

const (
	msgInvalidQuery       = "query must contain at least 3 characters"
	msgInvalidCoordinates = "lat and lon must be valid coordinates"
	msgAddressNotFound    = "address not found"
	msgGeocoderFailed     = "address lookup is temporarily unavailable"
)

type Handler struct {
	geocoder Geocoder
	logger   Logger
}

func NewHandler(geocoder Geocoder, logger Logger) *Handler {
	return &Handler{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Handle GET /api/v1/geocode/search
// Query params: q (required), postcode (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")

	addresses, err := h.geocoder.Search(r.Context(), q, query.Get("postcode"))
	if err != nil {
		switch {
		case errors.Is(err, nominatim.ErrInvalidQuery):
			h.logger.Warn("GET /geocode/search - Invalid query: %q", q)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /geocode/search - Geocoder failed: query=%q, error=%v", q, err)
			handlers.RespondBadGateway(w, msgGeocoderFailed)
		}
		return
	}

	h.logger.Info("GET /geocode/search - Suggestions returned: count=%d", len(addresses))
	handlers.RespondJSON(w, http.StatusOK, &SuggestionsResponse{Suggestions: addresses})
}

// HandleReverse GET /api/v1/geocode/reverse
// Query params: lat, lon (required)
func (h *Handler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(query.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		h.logger.Warn("GET /geocode/reverse - Invalid coordinates: lat=%q, lon=%q", query.Get("lat"), query.Get("lon"))
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}

	address, err := h.geocoder.Reverse(r.Context(), lat, lon)
	if err != nil {
		switch {
		case errors.Is(err, nominatim.ErrInvalidQuery):
			h.logger.Warn("GET /geocode/reverse - Coordinates out of range: lat=%f, lon=%f", lat, lon)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)

		case errors.Is(err, nominatim.ErrNotFound):
			h.logger.Warn("GET /geocode/reverse - Address not found: lat=%f, lon=%f", lat, lon)
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("GET /geocode/reverse - Geocoder failed: lat=%f, lon=%f, error=%v", lat, lon, err)
			handlers.RespondBadGateway(w, msgGeocoderFailed)
		}
		return
	}

	h.logger.Info("GET /geocode/reverse - Address resolved: place_id=%d", address.PlaceID)
	handlers.RespondJSON(w, http.StatusOK, address)
}
