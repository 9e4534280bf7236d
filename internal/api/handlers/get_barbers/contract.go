package get_barbers

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

type CatalogService interface {
	ListBarbers(ctx context.Context, barbershopID string, includeInactive bool) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
