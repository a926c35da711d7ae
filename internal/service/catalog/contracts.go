package catalog

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/domain"
)

// SportRepository интерфейс репозитория видов спорта
type SportRepository interface {
	ListActiveSports(ctx context.Context) ([]*domain.Sport, error)
	GetSportByName(ctx context.Context, name string) (*domain.Sport, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	ListActiveVenues(ctx context.Context) ([]*domain.Venue, error)
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetVenueByName(ctx context.Context, name string) (*domain.Venue, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	ListByVenueAndSport(ctx context.Context, venueID, sportID int64) ([]*domain.Court, error)
}

// CatalogCache кэш справочных данных
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, value any) error
	SetJSON(ctx context.Context, key string, value any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
