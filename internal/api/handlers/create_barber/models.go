package create_barber

import (
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

// CreateBarberRequest HTTP request model
type CreateBarberRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBarberRequest) ToServiceRequest(barbershopID string) *models.CreateBarberRequest {
	return &models.CreateBarberRequest{
		BarbershopID: barbershopID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
	}
}
