package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SportHub-BookingService/internal/api/handlers"
	"github.com/m04kA/SportHub-BookingService/internal/api/middleware"
	"github.com/m04kA/SportHub-BookingService/internal/service/bookings"
)

const (
	msgBadBookingID    = "ID бронирования должен быть числом"
	msgBookingNotFound = "бронирование не найдено"
	msgNoUserID        = "не передан заголовок X-User-ID"
	msgAccessDenied    = "нет прав на просмотр этого бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
//
// Бронирование видит его владелец либо администратор площадки, на корте
// которой оно сделано. Гостевые бронирования владельца не имеют, поэтому
// доступны только администраторам. Разграничение выполняет сервис, хендлер
// лишь транслирует ErrAccessDenied в 403.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["bookingId"]
	bookingID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - unparsable booking id %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgBadBookingID)
		return
	}

	// Маршрут закрыт middleware.Auth, userID обязан быть в контексте
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - no user id in context for booking_id=%d", bookingID)
		handlers.RespondUnauthorized(w, msgNoUserID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - no such booking: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - user_id=%d may not view booking_id=%d", userID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id} - lookup failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - booking_id=%d served to user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
