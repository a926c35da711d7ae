package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
	"github.com/m04kA/SportHub-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SportHub-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byUser   []*domain.Booking
	byVenue  []*domain.Booking

	updatedID     int64
	updatedStatus domain.BookingStatus
	updateErr     error

	gotFilter domain.VenueBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.byVenue, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

type fakeVenueAdminRepo struct {
	admins map[int64]int64 // userID -> venueID
	supers map[int64]bool
}

func (f *fakeVenueAdminRepo) IsVenueAdmin(_ context.Context, userID, venueID int64) (bool, error) {
	return f.admins[userID] == venueID, nil
}

func (f *fakeVenueAdminRepo) IsSuperAdmin(_ context.Context, userID int64) (bool, error) {
	return f.supers[userID], nil
}

type fakePublisher struct {
	events []events.BookingStatusChangedEvent
}

func (f *fakePublisher) PublishBookingStatusChanged(_ context.Context, event events.BookingStatusChangedEvent) error {
	f.events = append(f.events, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	svc       *Service
	bookings  *fakeBookingRepo
	publisher *fakePublisher
}

// newTestEnv собирает сервис с фиксированным окружением:
// бронирование id=1 пользователя 10 на корте 5 площадки 3,
// пользователь 20 - администратор площадки 3, пользователь 30 - супер-админ
func newTestEnv(status domain.BookingStatus) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: {ID: 1, CourtID: 5, UserID: ptr.Ptr(int64(10)), Status: status, StartTime: "10:00", EndTime: "11:00"},
		}},
		publisher: &fakePublisher{},
	}

	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		5: {ID: 5, VenueID: 3, Name: "Корт 1"},
	}}
	admins := &fakeVenueAdminRepo{
		admins: map[int64]int64{20: 3},
		supers: map[int64]bool{30: true},
	}

	env.svc = NewService(env.bookings, courts, admins, env.publisher, noopLogger{})
	return env
}

func TestService_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "owner", userID: 10},
		{name: "venue admin", userID: 20},
		{name: "super admin", userID: 30},
		{name: "stranger", userID: 99, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(domain.StatusPending)
			resp, err := env.svc.GetByID(context.Background(), 1, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	env := newTestEnv(domain.StatusPending)
	_, err := env.svc.GetByID(context.Background(), 42, 10)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	env := newTestEnv(domain.StatusPending)
	_, err := env.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetVenueBookings_AccessControl(t *testing.T) {
	env := newTestEnv(domain.StatusPending)
	env.bookings.byVenue = []*domain.Booking{{ID: 1, CourtID: 5, Status: domain.StatusConfirmed}}

	// Администратор площадки получает список
	resp, err := env.svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{VenueID: 3, UserID: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(3), env.bookings.gotFilter.VenueID)

	// Обычный пользователь доступа не имеет
	_, err = env.svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{VenueID: 3, UserID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		userID  int64
		wantErr error
	}{
		{name: "owner cancels pending", status: domain.StatusPending, userID: 10},
		{name: "owner cancels confirmed", status: domain.StatusConfirmed, userID: 10},
		{name: "venue admin cancels", status: domain.StatusPending, userID: 20},
		{name: "super admin cancels", status: domain.StatusPending, userID: 30},
		{name: "stranger denied", status: domain.StatusPending, userID: 99, wantErr: ErrAccessDenied},
		{name: "already cancelled", status: domain.StatusCancelled, userID: 10, wantErr: ErrCannotCancel},
		{name: "completed cannot be cancelled", status: domain.StatusCompleted, userID: 10, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(tt.status)
			err := env.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: tt.userID})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, env.publisher.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, env.bookings.updatedStatus)

			require.Len(t, env.publisher.events, 1)
			assert.Equal(t, string(domain.StatusCancelled), env.publisher.events[0].NewStatus)
			assert.Equal(t, tt.userID, env.publisher.events[0].ChangedBy)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.BookingStatus
		userID    int64
		newStatus string
		wantErr   error
	}{
		{name: "admin confirms pending", status: domain.StatusPending, userID: 20, newStatus: "confirmed"},
		{name: "admin completes confirmed", status: domain.StatusConfirmed, userID: 20, newStatus: "completed"},
		{name: "owner is not admin", status: domain.StatusPending, userID: 10, newStatus: "confirmed", wantErr: ErrAccessDenied},
		{name: "invalid status value", status: domain.StatusPending, userID: 20, newStatus: "archived", wantErr: ErrInvalidStatus},
		{name: "pending to completed forbidden", status: domain.StatusPending, userID: 20, newStatus: "completed", wantErr: ErrInvalidTransition},
		{name: "cancelled is terminal", status: domain.StatusCancelled, userID: 20, newStatus: "confirmed", wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(tt.status)
			err := env.svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: tt.userID,
				Status: tt.newStatus,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, env.publisher.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.newStatus), env.bookings.updatedStatus)
			require.Len(t, env.publisher.events, 1)
			assert.Equal(t, string(tt.status), env.publisher.events[0].OldStatus)
		})
	}
}

func TestService_UpdateStatus_RepositoryFailure(t *testing.T) {
	env := newTestEnv(domain.StatusPending)
	env.bookings.updateErr = errors.New("connection refused")

	err := env.svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 20,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, env.publisher.events)
}
