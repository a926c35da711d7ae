package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// TemplateSlotRepository интерфейс репозитория шаблонных слотов
type TemplateSlotRepository interface {
	// GetByIDs получает шаблонные слоты по списку ID.
	// Отсутствующие ID не являются ошибкой, вызывающая сторона сверяет количество
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.TemplateSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetActiveByCourtAndDate получает неотмененные бронирования корта на дату
	// Внутри транзакции выполняется с блокировкой FOR UPDATE
	GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
