package get_services

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, barbershopID string, includeInactive bool) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
