package resolve_courts

import (
	"net/http"

	"github.com/m04kA/SportHub-BookingService/internal/api/handlers"
)

const (
	msgMissingVenue = "отсутствует параметр venue"
	msgMissingSport = "отсутствует параметр sport"
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

// Handle GET /api/v1/courts?venue={venueName}&sport={sportName}
//
// Неизвестное имя площадки или вида спорта не считается ошибкой,
// в этом случае возвращается пустой список кортов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueName := r.URL.Query().Get("venue")
	if venueName == "" {
		h.logger.Warn("GET /courts - Missing venue parameter")
		handlers.RespondBadRequest(w, msgMissingVenue)
		return
	}

	sportName := r.URL.Query().Get("sport")
	if sportName == "" {
		h.logger.Warn("GET /courts - Missing sport parameter")
		handlers.RespondBadRequest(w, msgMissingSport)
		return
	}

	courts, err := h.service.ResolveCourts(r.Context(), venueName, sportName)
	if err != nil {
		h.logger.Error("GET /courts - Failed to resolve courts: venue=%q, sport=%q, error=%v",
			venueName, sportName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Resolved %d courts: venue=%q, sport=%q",
		len(courts.Courts), venueName, sportName)
	handlers.RespondJSON(w, http.StatusOK, courts)
}
