package finance

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// TransactionRepository интерфейс репозитория кассовых операций
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error)
	Totals(ctx context.Context, filter domain.TransactionsFilter) (domain.TransactionTotals, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
