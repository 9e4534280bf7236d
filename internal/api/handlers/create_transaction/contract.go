package create_transaction

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

type FinanceService interface {
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
