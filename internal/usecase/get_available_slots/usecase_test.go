package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
)

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
	err    error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	court, ok := f.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

type fakeSlotRepo struct {
	slots       []*domain.TemplateSlot
	err         error
	gotWeekday  int
	gotCourtID  int64
}

func (f *fakeSlotRepo) ListActiveByCourtAndWeekday(_ context.Context, courtID int64, dayOfWeek int) ([]*domain.TemplateSlot, error) {
	f.gotCourtID = courtID
	f.gotWeekday = dayOfWeek
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(courts *fakeCourtRepo, slots *fakeSlotRepo, bookings *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(courts, slots, bookings, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// 2025-06-02 - понедельник
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, VenueID: 1, SportID: 1, Name: "Корт 1", IsActive: true},
	}}
	slots := &fakeSlotRepo{slots: []*domain.TemplateSlot{
		makeSlot(10, "10:00", "11:00", 1000),
		makeSlot(11, "11:00", "12:00", 1200),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		makeBooking("11:00", "12:00", domain.StatusConfirmed),
	}}

	uc := newTestUseCase(courts, slots, bookings, now)
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, date, resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, int(time.Monday), slots.gotWeekday)
	assert.Equal(t, int64(1), slots.gotCourtID)
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Корт 1"},
	}}
	slots := &fakeSlotRepo{slots: nil}
	bookings := &fakeBookingRepo{err: errors.New("must not be called")}

	uc := newTestUseCase(courts, slots, bookings, now)
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeCourtRepo{courts: map[int64]*domain.Court{}},
		&fakeSlotRepo{},
		&fakeBookingRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 99, Date: date})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: {ID: 1}}},
		&fakeSlotRepo{},
		&fakeBookingRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_Today(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: {ID: 1}}},
		&fakeSlotRepo{slots: []*domain.TemplateSlot{makeSlot(1, "10:00", "11:00", 500)}},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero court id", req: &Request{CourtID: 0, Date: now}},
		{name: "negative court id", req: &Request{CourtID: -5, Date: now}},
		{name: "zero date", req: &Request{CourtID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeCourtRepo{}, &fakeSlotRepo{}, &fakeBookingRepo{}, now)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_StorageFailure(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeCourtRepo{courts: map[int64]*domain.Court{1: {ID: 1}}},
		&fakeSlotRepo{err: errors.New("connection refused")},
		&fakeBookingRepo{},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: date})

	assert.ErrorIs(t, err, ErrInternal)
}
