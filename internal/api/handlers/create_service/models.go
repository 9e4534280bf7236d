package create_service

import (
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(barbershopID string) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		BarbershopID:    barbershopID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
	}
}
