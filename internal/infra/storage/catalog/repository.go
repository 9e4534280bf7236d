package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/dbmetrics"
	"github.com/brunocamarg0/trim-squire/pkg/psqlbuilder"
)

const (
	servicesTable = "services"
	barbersTable  = "barbers"
)

var serviceColumns = []string{
	"id",
	"barbershop_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"category",
	"is_active",
	"created_at",
	"updated_at",
}

var barberColumns = []string{
	"id",
	"barbershop_id",
	"name",
	"email",
	"phone",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника услуг и барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ============ УСЛУГИ ============

// ListActiveServices получает активные услуги барбершопа, отсортированные по названию
func (r *Repository) ListActiveServices(ctx context.Context, barbershopID string) ([]*domain.Service, error) {
	return r.listServices(ctx, "ListActiveServices", barbershopID, true)
}

// ListServices получает все услуги барбершопа, включая отключенные
func (r *Repository) ListServices(ctx context.Context, barbershopID string) ([]*domain.Service, error) {
	return r.listServices(ctx, "ListServices", barbershopID, false)
}

func (r *Repository) listServices(ctx context.Context, op, barbershopID string, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"barbershop_id": barbershopID})

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID в пределах барбершопа
func (r *Repository) GetServiceByID(ctx context.Context, barbershopID, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// CreateService создает новую услугу
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(servicesTable).
		Columns(
			"id",
			"barbershop_id",
			"name",
			"description",
			"price",
			"duration_minutes",
			"category",
			"is_active",
		).
		Values(
			s.ID,
			s.BarbershopID,
			s.Name,
			nullString(s.Description),
			s.Price,
			s.DurationMinutes,
			nullString(s.Category),
			s.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// UpdateService перезаписывает изменяемые поля услуги
func (r *Repository) UpdateService(ctx context.Context, s *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(servicesTable).
		Set("name", s.Name).
		Set("description", nullString(s.Description)).
		Set("price", s.Price).
		Set("duration_minutes", s.DurationMinutes).
		Set("category", nullString(s.Category)).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Where(squirrel.Eq{"barbershop_id": s.BarbershopID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateService", query, args, ErrServiceNotFound)
}

// ============ БАРБЕРЫ ============

// ListActiveBarbers получает активных барберов барбершопа, отсортированных по имени
func (r *Repository) ListActiveBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error) {
	return r.listBarbers(ctx, "ListActiveBarbers", barbershopID, true)
}

// ListBarbers получает всех барберов барбершопа, включая отключенных
func (r *Repository) ListBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error) {
	return r.listBarbers(ctx, "ListBarbers", barbershopID, false)
}

func (r *Repository) listBarbers(ctx context.Context, op, barbershopID string, activeOnly bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(barberColumns...).
		From(barbersTable).
		Where(squirrel.Eq{"barbershop_id": barbershopID})

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan barber: %v", ErrScanRow, op, err)
		}
		barbers = append(barbers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return barbers, nil
}

// GetBarberByID получает барбера по ID в пределах барбершопа
func (r *Repository) GetBarberByID(ctx context.Context, barbershopID, id string) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From(barbersTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - scan barber: %v", ErrScanRow, err)
	}

	return b, nil
}

// CreateBarber создает нового барбера
func (r *Repository) CreateBarber(ctx context.Context, b *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(barbersTable).
		Columns(
			"id",
			"barbershop_id",
			"name",
			"email",
			"phone",
			"is_active",
		).
		Values(
			b.ID,
			b.BarbershopID,
			b.Name,
			b.Email,
			b.Phone,
			b.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBarber - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBarber - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// UpdateBarber перезаписывает изменяемые поля барбера
func (r *Repository) UpdateBarber(ctx context.Context, b *domain.Barber) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(barbersTable).
		Set("name", b.Name).
		Set("email", b.Email).
		Set("phone", b.Phone).
		Set("is_active", b.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Where(squirrel.Eq{"barbershop_id": b.BarbershopID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBarber - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateBarber", query, args, ErrBarberNotFound)
}

func (r *Repository) execAffectingOne(
	ctx context.Context,
	executor dbmetrics.DBExecutor,
	op, query string,
	args []interface{},
	notFound error,
) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var description, category sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&s.ID,
		&s.BarbershopID,
		&s.Name,
		&description,
		&s.Price,
		&s.DurationMinutes,
		&category,
		&s.IsActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	s.Description = description.String
	s.Category = category.String
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var b domain.Barber
	var email, phone sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&b.ID,
		&b.BarbershopID,
		&b.Name,
		&email,
		&phone,
		&b.IsActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if email.Valid {
		b.Email = &email.String
	}
	if phone.Valid {
		b.Phone = &phone.String
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// nullString пустая строка пишется в БД как NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
