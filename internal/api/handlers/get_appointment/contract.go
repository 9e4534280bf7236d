package get_appointment

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, barbershopID, id string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
