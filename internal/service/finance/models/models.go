package models

import (
	"errors"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

var (
	// ErrInvalidType возвращается при неизвестном типе транзакции
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidPeriod возвращается, если начало периода позже конца
	ErrInvalidPeriod = errors.New("start date is after end date")
)

// Request модели

// CreateTransactionRequest запрос на запись кассовой операции
type CreateTransactionRequest struct {
	BarbershopID  string    `json:"barbershopId"`
	Type          string    `json:"type"` // revenue | expense
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	Receipt       *string   `json:"receipt,omitempty"`
	CreatedBy     string    `json:"createdBy"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateTransactionRequest) ToDomain() (*domain.Transaction, error) {
	txType, err := ToDomainTransactionType(r.Type)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		BarbershopID:  r.BarbershopID,
		Type:          txType,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		AppointmentID: r.AppointmentID,
		Receipt:       r.Receipt,
		CreatedBy:     r.CreatedBy,
	}, nil
}

// ListTransactionsRequest запрос на получение транзакций барбершопа
type ListTransactionsRequest struct {
	BarbershopID string     `json:"barbershopId"`
	Type         *string    `json:"type,omitempty"`      // Фильтр по типу (опционально)
	StartDate    *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate      *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTransactionsRequest) ToDomainFilter() (domain.TransactionsFilter, error) {
	filter := domain.TransactionsFilter{
		BarbershopID: r.BarbershopID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}

	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidPeriod
	}

	if r.Type != nil {
		txType, err := ToDomainTransactionType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &txType
	}

	return filter, nil
}

// Response модели

// TransactionResponse ответ с данными транзакции
type TransactionResponse struct {
	ID            string    `json:"id"`
	BarbershopID  string    `json:"barbershopId"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          string    `json:"date"` // "2024-12-21"
	AppointmentID *string   `json:"appointmentId,omitempty"`
	Receipt       *string   `json:"receipt,omitempty"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse ответ со списком транзакций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// FinancialStatsResponse итоги за период
type FinancialStatsResponse struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Profit           float64 `json:"profit"`
	TransactionCount int     `json:"transactionCount"`
}

// Методы конвертации

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	return &TransactionResponse{
		ID:            t.ID,
		BarbershopID:  t.BarbershopID,
		Type:          string(t.Type),
		Category:      t.Category,
		Description:   t.Description,
		Amount:        t.Amount,
		Date:          t.Date.Format(domain.DateFormat),
		AppointmentID: t.AppointmentID,
		Receipt:       t.Receipt,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTransactionList конвертирует список domain моделей в DTO
func FromDomainTransactionList(transactions []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}

	for _, t := range transactions {
		if tResp := FromDomainTransaction(t); tResp != nil {
			resp.Transactions = append(resp.Transactions, *tResp)
		}
	}

	return resp
}

// FromDomainTotals конвертирует итоги в DTO
func FromDomainTotals(t domain.TransactionTotals) *FinancialStatsResponse {
	return &FinancialStatsResponse{
		TotalRevenue:     t.Revenue,
		TotalExpenses:    t.Expenses,
		Profit:           t.Profit(),
		TransactionCount: t.Count,
	}
}

// ToDomainTransactionType конвертирует строку в domain.TransactionType с валидацией
func ToDomainTransactionType(s string) (domain.TransactionType, error) {
	t := domain.TransactionType(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
