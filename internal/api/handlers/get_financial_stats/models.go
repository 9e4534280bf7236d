package get_financial_stats

import (
	"fmt"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров периода
func ToServiceRequest(barbershopID, startDateStr, endDateStr string) (*models.ListTransactionsRequest, error) {
	req := &models.ListTransactionsRequest{
		BarbershopID: barbershopID,
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
