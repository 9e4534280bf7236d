package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/dbmetrics"
	"github.com/brunocamarg0/trim-squire/pkg/psqlbuilder"
)

const table = "transactions"

var columns = []string{
	"id",
	"barbershop_id",
	"type",
	"category",
	"description",
	"amount",
	"date",
	"appointment_id",
	"receipt",
	"created_by",
	"created_at",
}

// Repository репозиторий кассовых операций барбершопа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет транзакцию
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if !t.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"barbershop_id",
			"type",
			"category",
			"description",
			"amount",
			"date",
			"appointment_id",
			"receipt",
			"created_by",
		).
		Values(
			t.ID,
			t.BarbershopID,
			t.Type,
			t.Category,
			t.Description,
			t.Amount,
			t.Date,
			t.AppointmentID,
			t.Receipt,
			t.CreatedBy,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// List получает транзакции барбершопа, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("date DESC", "created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan transaction: %v", ErrScanRow, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// Totals суммирует выручку и расходы за период одним запросом.
// Фильтр по типу и лимит игнорируются.
func (r *Repository) Totals(ctx context.Context, filter domain.TransactionsFilter) (domain.TransactionTotals, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	filter.Type = nil
	query, args, err := applyFilter(psqlbuilder.Select(
		"type",
		"COALESCE(SUM(amount), 0)",
		"COUNT(*)",
	).From(table), filter).
		GroupBy("type").
		ToSql()

	var totals domain.TransactionTotals
	if err != nil {
		return totals, fmt.Errorf("%w: Totals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return totals, fmt.Errorf("%w: Totals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var txType domain.TransactionType
		var sum float64
		var count int

		if err := rows.Scan(&txType, &sum, &count); err != nil {
			return totals, fmt.Errorf("%w: Totals - scan totals: %v", ErrScanRow, err)
		}

		switch txType {
		case domain.TransactionRevenue:
			totals.Revenue = sum
		case domain.TransactionExpense:
			totals.Expenses = sum
		}
		totals.Count += count
	}

	if err := rows.Err(); err != nil {
		return totals, fmt.Errorf("%w: Totals - rows error: %v", ErrScanRow, err)
	}

	return totals, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.TransactionsFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"barbershop_id": filter.BarbershopID})

	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.StartDate != nil {
		b = b.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		b = b.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var appointmentID, receipt sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.BarbershopID,
		&t.Type,
		&t.Category,
		&t.Description,
		&t.Amount,
		&t.Date,
		&appointmentID,
		&receipt,
		&t.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if appointmentID.Valid {
		t.AppointmentID = &appointmentID.String
	}
	if receipt.Valid {
		t.Receipt = &receipt.String
	}
	t.CreatedAt = createdAt.Time

	return &t, nil
}
