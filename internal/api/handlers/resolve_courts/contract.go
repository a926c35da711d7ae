package resolve_courts

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ResolveCourts(ctx context.Context, venueName, sportName string) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
