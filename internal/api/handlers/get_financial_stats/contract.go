package get_financial_stats

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

type FinanceService interface {
	GetStats(ctx context.Context, req *models.ListTransactionsRequest) (*models.FinancialStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
