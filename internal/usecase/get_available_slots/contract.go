package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// TemplateSlotRepository интерфейс репозитория шаблонных слотов
type TemplateSlotRepository interface {
	// ListActiveByCourtAndWeekday получает активные шаблонные слоты корта на день недели
	ListActiveByCourtAndWeekday(ctx context.Context, courtID int64, dayOfWeek int) ([]*domain.TemplateSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByCourtAndDate получает неотмененные бронирования корта на дату
	GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
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
