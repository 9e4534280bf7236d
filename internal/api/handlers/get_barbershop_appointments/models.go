package get_barbershop_appointments

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	barbershopID string,
	barberIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		BarbershopID: barbershopID,
	}

	if barberIDStr != "" {
		req.BarberID = &barberIDStr
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		start, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &start
	}

	if endDateStr != "" {
		end, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &end
	}

	return req, nil
}
