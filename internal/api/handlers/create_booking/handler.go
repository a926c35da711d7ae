package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SportHub-BookingService/internal/api/handlers"
	"github.com/m04kA/SportHub-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SportHub-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotTaken          = "один или несколько выбранных слотов уже заняты"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotFound       = "один или несколько слотов не найдены"
	msgSlotMismatch       = "слот не относится к выбранному корту или дате"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgGuestInfoRequired  = "для гостевого бронирования укажите имя и телефон"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
//
// Маршрут доступен и гостям: идентификатор пользователя берется из
// заголовка X-User-ID, если он передан, иначе бронирование гостевое
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Извлекаем userID из контекста (через middleware Identity)
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: court_id=%d, date=%s", req.CourtID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: court_id=%d, slots=%v", req.CourtID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotMismatch):
			h.logger.Warn("POST /bookings - Slot mismatch: court_id=%d, slots=%v", req.CourtID, req.SlotIDs)
			handlers.RespondBadRequest(w, msgSlotMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: court_id=%d, date=%s", req.CourtID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrGuestInfoRequired):
			h.logger.Warn("POST /bookings - Guest info required: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgGuestInfoRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking batch created successfully: batch=%s, court_id=%d, bookings=%d",
		result.BatchRef, req.CourtID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
