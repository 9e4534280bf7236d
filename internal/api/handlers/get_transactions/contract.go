package get_transactions

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

type FinanceService interface {
	ListTransactions(ctx context.Context, req *models.ListTransactionsRequest) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
