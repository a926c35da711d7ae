package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) > domain.MaxSlotsPerBooking {
		return fmt.Errorf("%w: at most %d slots per booking", ErrInvalidInput, domain.MaxSlotsPerBooking)
	}

	// Проверяем отсутствие дубликатов слотов
	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id=%d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	// Гостевое бронирование требует имя и телефон
	if req.UserID == nil {
		return validateGuestInfo(req)
	}

	if *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateGuestInfo валидирует данные гостя для бронирования без аккаунта
func validateGuestInfo(req *Request) error {
	if req.GuestName == nil || strings.TrimSpace(*req.GuestName) == "" {
		return ErrGuestInfoRequired
	}
	if req.GuestPhone == nil || strings.TrimSpace(*req.GuestPhone) == "" {
		return ErrGuestInfoRequired
	}

	if len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name too long", ErrInvalidInput)
	}
	if len(*req.GuestPhone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone too long", ErrInvalidInput)
	}

	return nil
}

// validateSlots проверяет, что все запрошенные слоты существуют, активны,
// принадлежат корту и относятся к дню недели запрошенной даты
func validateSlots(slots []*domain.TemplateSlot, requested []int64, courtID int64, date time.Time) error {
	if len(slots) != len(requested) {
		return ErrSlotNotFound
	}

	dayOfWeek := int(date.Weekday())

	for _, slot := range slots {
		if !slot.IsActive {
			return fmt.Errorf("%w: slot id=%d is not active", ErrSlotNotFound, slot.ID)
		}
		if slot.CourtID != courtID {
			return fmt.Errorf("%w: slot id=%d belongs to court=%d", ErrSlotMismatch, slot.ID, slot.CourtID)
		}
		if slot.DayOfWeek != dayOfWeek {
			return fmt.Errorf("%w: slot id=%d is for weekday=%d, date is weekday=%d",
				ErrSlotMismatch, slot.ID, slot.DayOfWeek, dayOfWeek)
		}
	}

	return nil
}

// findOverlappingBooking ищет активное бронирование, пересекающееся со слотом.
// Критерий пересечения - domain.TemplateSlot.Overlaps: строгие неравенства,
// граничные случаи не считаются пересечением
func findOverlappingBooking(slot *domain.TemplateSlot, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		if slot.Overlaps(booking.StartTime, booking.EndTime) {
			return booking
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
