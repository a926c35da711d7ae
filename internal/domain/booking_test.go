package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SportHub-BookingService/pkg/types"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		name   string
		status BookingStatus
		want   bool
	}{
		{name: "pending", status: StatusPending, want: true},
		{name: "confirmed", status: StatusConfirmed, want: true},
		{name: "cancelled", status: StatusCancelled, want: false},
		{name: "completed", status: StatusCompleted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanBeCancelled())
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_IsGuest(t *testing.T) {
	userID := int64(42)

	assert.False(t, (&Booking{UserID: &userID}).IsGuest())
	assert.True(t, (&Booking{UserID: nil}).IsGuest())
}

func TestTemplateSlot_Overlaps(t *testing.T) {
	slot := &TemplateSlot{
		StartTime: types.TimeString("11:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{name: "exact match", start: "11:00", end: "12:00", want: true},
		{name: "fully inside", start: "11:15", end: "11:45", want: true},
		{name: "covers slot", start: "10:00", end: "13:00", want: true},
		{name: "overlaps start", start: "10:30", end: "11:30", want: true},
		{name: "overlaps end", start: "11:30", end: "12:30", want: true},
		{name: "ends at slot start", start: "10:00", end: "11:00", want: false},
		{name: "starts at slot end", start: "12:00", end: "13:00", want: false},
		{name: "before slot", start: "09:00", end: "10:00", want: false},
		{name: "after slot", start: "13:00", end: "14:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.start, tt.end))
		})
	}
}
