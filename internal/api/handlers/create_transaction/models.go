package create_transaction

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

// CreateTransactionRequest HTTP request model
type CreateTransactionRequest struct {
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"` // "2024-12-21"
	AppointmentID *string `json:"appointmentId,omitempty"`
	Receipt       *string `json:"receipt,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// Автором операции считается вызывающий пользователь.
func (r *CreateTransactionRequest) ToServiceRequest(barbershopID, userID string) (*models.CreateTransactionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return &models.CreateTransactionRequest{
		BarbershopID:  barbershopID,
		Type:          r.Type,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          date,
		AppointmentID: r.AppointmentID,
		Receipt:       r.Receipt,
		CreatedBy:     userID,
	}, nil
}
