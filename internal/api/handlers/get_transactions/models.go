package get_transactions

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	barbershopID string,
	typeStr string,
	startDateStr string,
	endDateStr string,
) (*models.ListTransactionsRequest, error) {
	req := &models.ListTransactionsRequest{
		BarbershopID: barbershopID,
	}

	if typeStr != "" {
		req.Type = &typeStr
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
