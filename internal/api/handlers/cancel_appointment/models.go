package cancel_appointment

import (
	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		Notes: r.Notes,
	}
}
