package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestNameLength  = 100
	MaxGuestPhoneLength = 20
	MaxSlotsPerBooking  = 10
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses статусы, при которых бронирование занимает слот.
// Используется при подсчете доступности слотов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
