package list_venues

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListVenues(ctx context.Context) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
