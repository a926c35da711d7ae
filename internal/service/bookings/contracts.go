package bookings

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// VenueAdminRepository интерфейс репозитория прав администраторов площадок
type VenueAdminRepository interface {
	IsVenueAdmin(ctx context.Context, userID, venueID int64) (bool, error)
	IsSuperAdmin(ctx context.Context, userID int64) (bool, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingStatusChanged(ctx context.Context, event events.BookingStatusChangedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
