package domain

import (
	"time"

	"github.com/m04kA/SportHub-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a reservation of one template slot of a court on a
// concrete date. A multi-slot booking is a set of rows sharing a BatchRef.
type Booking struct {
	ID          int64
	CourtID     int64
	UserID      *int64 // nil for guest bookings
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	TotalPrice  float64 // copied from the template slot at booking time
	Status      BookingStatus
	BatchRef    string // groups bookings created in one submission

	// Guest contact data, present only when UserID is nil
	GuestName  *string
	GuestPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGuest returns true if the booking was made without an account
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// IsActive returns true if the booking still blocks its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether an admin may move the booking to next.
// Allowed transitions: pending -> confirmed|cancelled,
// confirmed -> completed|cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// VenueBookingsFilter фильтр для получения бронирований площадки
type VenueBookingsFilter struct {
	VenueID          int64          // Обязательный параметр
	CourtID          *int64         // Фильтр по корту (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
