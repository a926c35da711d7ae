package list_sports

import (
	"context"

	"github.com/m04kA/SportHub-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSports(ctx context.Context) (*models.SportListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
