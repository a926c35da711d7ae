package list_venues

import (
	"net/http"

	"github.com/m04kA/SportHub-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.ListVenues(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Returned %d venues", len(venues.Venues))
	handlers.RespondJSON(w, http.StatusOK, venues)
}
