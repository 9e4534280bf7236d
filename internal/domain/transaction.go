package domain

import "time"

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionRevenue TransactionType = "revenue"
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether the type is one of the known values
func (t TransactionType) IsValid() bool {
	return t == TransactionRevenue || t == TransactionExpense
}

// Transaction is a single entry of a barbershop's cash ledger
type Transaction struct {
	ID            string
	BarbershopID  string
	Type          TransactionType
	Category      string
	Description   string
	Amount        float64
	Date          time.Time // calendar day, time of day is ignored
	AppointmentID *string
	Receipt       *string // receipt URL
	CreatedBy     string
	CreatedAt     time.Time
}

// TransactionsFilter фильтр для получения транзакций барбершопа
type TransactionsFilter struct {
	BarbershopID string           // Обязательный параметр
	Type         *TransactionType // Фильтр по типу (опционально)
	StartDate    *time.Time       // Начало периода включительно (опционально)
	EndDate      *time.Time       // Конец периода включительно (опционально)
	Limit        uint64           // 0 - без ограничения
}

// TransactionTotals итоги по транзакциям за период
type TransactionTotals struct {
	Revenue  float64
	Expenses float64
	Count    int
}

// Profit returns revenue minus expenses
func (t TransactionTotals) Profit() float64 {
	return t.Revenue - t.Expenses
}
