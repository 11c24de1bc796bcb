package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/pricing"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

const (
	msgMissingVehicleClass = "vehicleClass is required"
	msgMissingServiceID    = "serviceId is required"
	msgInvalidVehicleClass = "unsupported vehicle class"
	msgUnknownService      = "service not found"
	msgInvalidAddOn        = "invalid add-on"
)

type Handler struct {
	pricing PriceCalculator
	logger  Logger
}

func NewHandler(pricing PriceCalculator, logger Logger) *Handler {
	return &Handler{
		pricing: pricing,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote
// Query params: vehicleClass (required), serviceId (required), addOn (repeatable)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vehicleClass := query.Get("vehicleClass")
	if vehicleClass == "" {
		h.logger.Warn("GET /quote - Missing vehicle class")
		handlers.RespondBadRequest(w, msgMissingVehicleClass)
		return
	}

	serviceID := query.Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /quote - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	addOnIDs := query["addOn"]

	breakdown, err := h.pricing.ComputePrice(domain.VehicleClass(vehicleClass), serviceID, addOnIDs)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidVehicleClass):
			h.logger.Warn("GET /quote - Invalid vehicle class: %s", vehicleClass)
			handlers.RespondUnprocessable(w, msgInvalidVehicleClass)

		case errors.Is(err, pricing.ErrUnknownService):
			h.logger.Warn("GET /quote - Unknown service: service_id=%s", serviceID)
			handlers.RespondUnprocessable(w, msgUnknownService)

		case errors.Is(err, pricing.ErrInvalidAddOn):
			h.logger.Warn("GET /quote - Invalid add-on: add_ons=%v", addOnIDs)
			handlers.RespondUnprocessable(w, msgInvalidAddOn)

		default:
			h.logger.Error("GET /quote - Failed to compute price: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quote - Quote computed: vehicle_class=%s, service_id=%s, total=%d",
		vehicleClass, serviceID, breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, models.FromPriceBreakdown(breakdown))
}
