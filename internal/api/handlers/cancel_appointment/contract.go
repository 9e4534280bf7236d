package cancel_appointment

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, barbershopID, id string, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
