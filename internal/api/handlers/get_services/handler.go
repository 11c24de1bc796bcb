package get_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/catalog"
)

const msgServiceNotFound = "service not found"

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := &MenuResponse{
		VehicleClasses: vehicleClasses(),
		Services:       FromServicePackages(h.catalog.GetBookableServices()),
		AddOns:         FromServicePackages(h.catalog.GetAddOns()),
	}

	h.logger.Info("GET /services - Menu retrieved: services=%d, add_ons=%d",
		len(response.Services), len(response.AddOns))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleByID GET /api/v1/services/{serviceId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	pkg, err := h.catalog.GetService(serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{id} - Service retrieved: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromServicePackage(pkg))
}
