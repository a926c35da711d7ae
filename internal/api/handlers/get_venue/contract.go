package get_venue

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetVenue(ctx context.Context, id int64) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
