package update_barber

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateBarber(
		ctx context.Context,
		barbershopID, barberID string,
		req *models.UpdateBarberRequest,
	) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
