package domain

import "github.com/m04kA/SportHub-BookingService/pkg/types"

// TemplateSlot represents a recurring weekly bookable window of a court.
// DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday. The template
// itself reserves nothing; only bookings do.
type TemplateSlot struct {
	ID        int64
	CourtID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     float64
	IsActive  bool
}

// Overlaps returns true if the slot window strictly overlaps the given
// interval. Touching boundaries (one ends where the other starts) do not
// count as overlap.
func (s *TemplateSlot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}
