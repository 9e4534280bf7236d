package finance

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

// Service сервис кассы барбершопа: приход, расход и итоги
type Service struct {
	transactionRepo TransactionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса кассы
func NewService(transactionRepo TransactionRepository, logger Logger) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// CreateTransaction записывает приход или расход
func (s *Service) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.TransactionResponse, error) {
	s.logger.Info("CreateTransaction: barbershop=%s, type=%s, amount=%.2f", req.BarbershopID, req.Type, req.Amount)

	// 1. Валидация входных данных
	transaction, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateTransaction: invalid type %q", req.Type)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateTransaction(transaction); err != nil {
		s.logger.Warn("CreateTransaction: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохранение
	created, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		s.logger.Error("CreateTransaction: failed to create transaction for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: CreateTransaction - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTransaction: created transaction id=%s", created.ID)
	return models.FromDomainTransaction(created), nil
}

// ListTransactions возвращает операции барбершопа, новые первыми
func (s *Service) ListTransactions(ctx context.Context, req *models.ListTransactionsRequest) (*models.TransactionListResponse, error) {
	filter, err := s.filter("ListTransactions", req)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListTransactions: repository error for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: ListTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTransactions: fetched %d transactions for barbershop=%s", len(transactions), req.BarbershopID)
	return models.FromDomainTransactionList(transactions), nil
}

// GetStats считает выручку, расходы и прибыль за период
func (s *Service) GetStats(ctx context.Context, req *models.ListTransactionsRequest) (*models.FinancialStatsResponse, error) {
	filter, err := s.filter("GetStats", req)
	if err != nil {
		return nil, err
	}

	totals, err := s.transactionRepo.Totals(ctx, filter)
	if err != nil {
		s.logger.Error("GetStats: repository error for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStats: barbershop=%s, revenue=%.2f, expenses=%.2f, count=%d",
		req.BarbershopID, totals.Revenue, totals.Expenses, totals.Count)
	return models.FromDomainTotals(totals), nil
}

func (s *Service) filter(op string, req *models.ListTransactionsRequest) (domain.TransactionsFilter, error) {
	if req == nil || strings.TrimSpace(req.BarbershopID) == "" {
		return domain.TransactionsFilter{}, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("%s: invalid filter: %v", op, err)
		return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return filter, nil
}

func validateTransaction(t *domain.Transaction) error {
	if strings.TrimSpace(t.BarbershopID) == "" {
		return fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.CreatedBy) == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(t.Category) > domain.MaxNameLength {
		return fmt.Errorf("%w: category exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if utf8.RuneCountInString(t.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	t.Date = time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
