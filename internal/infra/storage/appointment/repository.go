package appointment

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

const table = "appointments"

var columns = []string{
	"id",
	"barbershop_id",
	"barber_id",
	"client_id",
	"service_ids",
	"date",
	"start_time",
	"end_time",
	"duration_minutes",
	"total_price",
	"status",
	"payment_status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"barbershop_id",
			"barber_id",
			"client_id",
			"service_ids",
			"date",
			"start_time",
			"end_time",
			"duration_minutes",
			"total_price",
			"status",
			"payment_status",
			"notes",
		).
		Values(
			appointment.ID,
			appointment.BarbershopID,
			appointment.BarberID,
			appointment.ClientID,
			pq.Array(appointment.ServiceIDs),
			appointment.Date,
			appointment.StartTime,
			appointment.EndTime,
			appointment.DurationMinutes,
			appointment.TotalPrice,
			appointment.Status,
			appointment.PaymentStatus,
			appointment.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID в пределах барбершопа
func (r *Repository) GetByID(ctx context.Context, barbershopID, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List получает записи барбершопа с фильтрацией по барберу, статусу и периоду.
// Сортировка по дате и времени начала.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"barbershop_id": filter.BarbershopID})

	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := selectBuilder.OrderBy("date ASC", "start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи. Если notes не nil, заметки перезаписываются.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, notes *string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()"))

	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}

	query, args, err := updateBuilder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var notes sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.BarbershopID,
		&a.BarberID,
		&a.ClientID,
		pq.Array(&a.ServiceIDs),
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.DurationMinutes,
		&a.TotalPrice,
		&a.Status,
		&a.PaymentStatus,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		a.Notes = &notes.String
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
