package list_sports

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

// Handle GET /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sports, err := h.service.ListSports(r.Context())
	if err != nil {
		h.logger.Error("GET /sports - Failed to list sports: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports - Returned %d sports", len(sports.Sports))
	handlers.RespondJSON(w, http.StatusOK, sports)
}
