package events

import "time"

// Имена очередей доменных событий
const (
	QueueBookingCreated       = "booking.created"
	QueueBookingStatusChanged = "booking.status_changed"
)

// BookingCreatedEvent событие создания пакета бронирований
type BookingCreatedEvent struct {
	BatchRef    string    `json:"batch_ref"`
	CourtID     int64     `json:"court_id"`
	UserID      *int64    `json:"user_id,omitempty"`
	BookingDate string    `json:"booking_date"`
	BookingIDs  []int64   `json:"booking_ids"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingStatusChangedEvent событие смены статуса бронирования
type BookingStatusChangedEvent struct {
	BookingID int64     `json:"booking_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy int64     `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
