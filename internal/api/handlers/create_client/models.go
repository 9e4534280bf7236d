package create_client

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	Name                string   `json:"name"`
	Email               *string  `json:"email,omitempty"`
	Phone               string   `json:"phone"`
	DateOfBirth         *string  `json:"dateOfBirth,omitempty"` // "1990-05-17"
	PreferredBarberID   *string  `json:"preferredBarberId,omitempty"`
	PreferredServiceIDs []string `json:"preferredServiceIds,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateClientRequest) ToServiceRequest(barbershopID string) (*models.CreateClientRequest, error) {
	req := &models.CreateClientRequest{
		BarbershopID:        barbershopID,
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		PreferredBarberID:   r.PreferredBarberID,
		PreferredServiceIDs: r.PreferredServiceIDs,
		Notes:               r.Notes,
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := time.Parse(domain.DateFormat, *r.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid dateOfBirth: %w", err)
		}
		req.DateOfBirth = &dob
	}

	return req, nil
}
