package update_client

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

// UpdateClientRequest HTTP request model, отсутствующие поля не меняются
type UpdateClientRequest struct {
	Name                *string   `json:"name,omitempty"`
	Email               *string   `json:"email,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	DateOfBirth         *string   `json:"dateOfBirth,omitempty"` // "1990-05-17"
	PreferredBarberID   *string   `json:"preferredBarberId,omitempty"`
	PreferredServiceIDs *[]string `json:"preferredServiceIds,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateClientRequest) ToServiceRequest() (*models.UpdateClientRequest, error) {
	req := &models.UpdateClientRequest{
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		PreferredBarberID:   r.PreferredBarberID,
		PreferredServiceIDs: r.PreferredServiceIDs,
		Notes:               r.Notes,
	}

	if r.DateOfBirth != nil {
		dob, err := time.Parse(domain.DateFormat, *r.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid dateOfBirth: %w", err)
		}
		req.DateOfBirth = &dob
	}

	return req, nil
}
