package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tooManySlots := make([]int64, domain.MaxSlotsPerBooking+1)
	for i := range tooManySlots {
		tooManySlots[i] = int64(i + 1)
	}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "valid user booking",
			req:  &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: []int64{1, 2}},
		},
		{
			name: "valid guest booking",
			req: &Request{
				CourtID: 1, Date: date, SlotIDs: []int64{1},
				GuestName: ptr.Ptr("Иван"), GuestPhone: ptr.Ptr("+79991234567"),
			},
		},
		{
			name:    "zero court id",
			req:     &Request{CourtID: 0, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: []int64{1}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), SlotIDs: []int64{1}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty slot list",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: nil},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "too many slots",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: tooManySlots},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate slot ids",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: []int64{3, 3}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive slot id",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(10)), Date: date, SlotIDs: []int64{0}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive user id",
			req:     &Request{CourtID: 1, UserID: ptr.Ptr(int64(-1)), Date: date, SlotIDs: []int64{1}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "guest without name",
			req:     &Request{CourtID: 1, Date: date, SlotIDs: []int64{1}, GuestPhone: ptr.Ptr("+79991234567")},
			wantErr: ErrGuestInfoRequired,
		},
		{
			name:    "guest without phone",
			req:     &Request{CourtID: 1, Date: date, SlotIDs: []int64{1}, GuestName: ptr.Ptr("Иван")},
			wantErr: ErrGuestInfoRequired,
		},
		{
			name: "guest with blank name",
			req: &Request{
				CourtID: 1, Date: date, SlotIDs: []int64{1},
				GuestName: ptr.Ptr("   "), GuestPhone: ptr.Ptr("+79991234567"),
			},
			wantErr: ErrGuestInfoRequired,
		},
		{
			name: "guest name too long",
			req: &Request{
				CourtID: 1, Date: date, SlotIDs: []int64{1},
				GuestName:  ptr.Ptr(strings.Repeat("а", domain.MaxGuestNameLength+1)),
				GuestPhone: ptr.Ptr("+79991234567"),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlots(t *testing.T) {
	// 2025-06-02 - понедельник, weekday=1
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slot := func(id, courtID int64, dayOfWeek int, active bool) *domain.TemplateSlot {
		return &domain.TemplateSlot{ID: id, CourtID: courtID, DayOfWeek: dayOfWeek, IsActive: active}
	}

	tests := []struct {
		name      string
		slots     []*domain.TemplateSlot
		requested []int64
		wantErr   error
	}{
		{
			name:      "all slots match",
			slots:     []*domain.TemplateSlot{slot(1, 5, 1, true), slot(2, 5, 1, true)},
			requested: []int64{1, 2},
		},
		{
			name:      "missing slot",
			slots:     []*domain.TemplateSlot{slot(1, 5, 1, true)},
			requested: []int64{1, 2},
			wantErr:   ErrSlotNotFound,
		},
		{
			name:      "inactive slot",
			slots:     []*domain.TemplateSlot{slot(1, 5, 1, false)},
			requested: []int64{1},
			wantErr:   ErrSlotNotFound,
		},
		{
			name:      "slot from another court",
			slots:     []*domain.TemplateSlot{slot(1, 7, 1, true)},
			requested: []int64{1},
			wantErr:   ErrSlotMismatch,
		},
		{
			name:      "slot for another weekday",
			slots:     []*domain.TemplateSlot{slot(1, 5, 3, true)},
			requested: []int64{1},
			wantErr:   ErrSlotMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlots(tt.slots, tt.requested, 5, date)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindOverlappingBooking(t *testing.T) {
	slot := &domain.TemplateSlot{
		StartTime: "11:00",
		EndTime:   "12:00",
	}

	overlap := &domain.Booking{
		ID: 42, StartTime: "11:30", EndTime: "12:30", Status: domain.StatusConfirmed,
	}
	touching := &domain.Booking{
		ID: 43, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed,
	}
	cancelled := &domain.Booking{
		ID: 44, StartTime: "11:00", EndTime: "12:00", Status: domain.StatusCancelled,
	}

	assert.Equal(t, overlap, findOverlappingBooking(slot, []*domain.Booking{touching, overlap}))
	assert.Nil(t, findOverlappingBooking(slot, []*domain.Booking{touching}))
	assert.Nil(t, findOverlappingBooking(slot, []*domain.Booking{cancelled}))
	assert.Nil(t, findOverlappingBooking(slot, nil))
}
