package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/dbmetrics"
	"github.com/brunocamarg0/trim-squire/pkg/psqlbuilder"
)

const table = "clients"

var columns = []string{
	"id",
	"barbershop_id",
	"name",
	"email",
	"phone",
	"date_of_birth",
	"preferred_barber_id",
	"preferred_service_ids",
	"notes",
	"last_visit",
	"total_visits",
	"total_spent",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентов барбершопа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клиента. Счетчики визитов и трат начинаются с нуля.
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.PreferredServiceIDs == nil {
		c.PreferredServiceIDs = []string{}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"barbershop_id",
			"name",
			"email",
			"phone",
			"date_of_birth",
			"preferred_barber_id",
			"preferred_service_ids",
			"notes",
		).
		Values(
			c.ID,
			c.BarbershopID,
			c.Name,
			c.Email,
			c.Phone,
			c.DateOfBirth,
			c.PreferredBarberID,
			pq.Array(c.PreferredServiceIDs),
			c.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.TotalVisits = 0
	c.TotalSpent = 0

	return c, nil
}

// GetByID получает клиента по ID в пределах барбершопа
func (r *Repository) GetByID(ctx context.Context, barbershopID, id string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает клиентов барбершопа, отсортированных по имени
func (r *Repository) List(ctx context.Context, barbershopID string) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

// Count возвращает количество клиентов барбершопа
func (r *Repository) Count(ctx context.Context, barbershopID string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update перезаписывает контактные данные и предпочтения клиента.
// Счетчики визитов и трат не меняются.
func (r *Repository) Update(ctx context.Context, c *domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	preferred := c.PreferredServiceIDs
	if preferred == nil {
		preferred = []string{}
	}

	query, args, err := psqlbuilder.Update(table).
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("date_of_birth", c.DateOfBirth).
		Set("preferred_barber_id", c.PreferredBarberID).
		Set("preferred_service_ids", pq.Array(preferred)).
		Set("notes", c.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Where(squirrel.Eq{"barbershop_id": c.BarbershopID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var email, preferredBarber, notes sql.NullString
	var dateOfBirth, lastVisit, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.BarbershopID,
		&c.Name,
		&email,
		&c.Phone,
		&dateOfBirth,
		&preferredBarber,
		pq.Array(&c.PreferredServiceIDs),
		&notes,
		&lastVisit,
		&c.TotalVisits,
		&c.TotalSpent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		c.Email = &email.String
	}
	if preferredBarber.Valid {
		c.PreferredBarberID = &preferredBarber.String
	}
	if notes.Valid {
		c.Notes = &notes.String
	}
	if dateOfBirth.Valid {
		c.DateOfBirth = &dateOfBirth.Time
	}
	if lastVisit.Valid {
		c.LastVisit = &lastVisit.Time
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
