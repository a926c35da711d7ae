package get_available_slots

import (
	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

// markAvailability вычисляет доступность каждого шаблонного слота на дату.
// Слот занят, если с ним пересекается хотя бы одно активное бронирование.
// Порядок слотов сохраняется, входные данные не модифицируются.
func markAvailability(slots []*domain.TemplateSlot, bookings []*domain.Booking) []Slot {
	result := make([]Slot, len(slots))

	for i, slot := range slots {
		result[i] = Slot{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Price:     slot.Price,
			Available: !hasOverlappingBooking(slot, bookings),
		}
	}

	return result
}

// hasOverlappingBooking проверяет, пересекается ли слот с активным бронированием
// Пересечение есть только если интервалы действительно накладываются друг на друга
// Если бронирование заканчивается ровно там, где начинается слот (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Слот 11:00-12:00, бронирование 11:30-12:30 → ЕСТЬ пересечение (11:30-12:00)
// - Слот 11:00-12:00, бронирование 10:00-11:00 → НЕТ пересечения (граничат)
// - Слот 11:00-12:00, бронирование 12:00-13:00 → НЕТ пересечения (граничат)
func hasOverlappingBooking(slot *domain.TemplateSlot, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		if slot.Overlaps(booking.StartTime, booking.EndTime) {
			return true
		}
	}

	return false
}
