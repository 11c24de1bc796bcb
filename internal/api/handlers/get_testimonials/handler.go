package get_testimonials

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
)

type Handler struct {
	source TestimonialSource
	logger Logger
}

func NewHandler(source TestimonialSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/testimonials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items := h.source.Testimonials()

	h.logger.Info("GET /testimonials - Returned %d testimonials", len(items))
	handlers.RespondJSON(w, http.StatusOK, &TestimonialsResponse{
		Testimonials: fromDomain(items),
	})
}
