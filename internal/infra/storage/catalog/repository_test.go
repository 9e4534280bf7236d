package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewRepository(db), mock
}

func TestRepository_ListActiveServices(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM services WHERE barbershop_id = $1 AND is_active = $2 ORDER BY name ASC",
	)).
		WithArgs("shop-1", true).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "barbershop_id", "name", "description", "price", "duration_minutes", "category", "is_active", "created_at", "updated_at",
		}).
			AddRow("svc-1", "shop-1", "Barba", "Barba com toalha quente", 40.0, 30, "barba", true, now, now).
			AddRow("svc-2", "shop-1", "Luzes", nil, 60.0, 45, nil, true, now, now))

	services, err := repo.ListActiveServices(context.Background(), "shop-1")

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Barba", services[0].Name)
	assert.Equal(t, 40.0, services[0].Price)
	assert.Equal(t, 30, services[0].DurationMinutes)
	assert.Equal(t, "barba", services[0].Category)
	assert.Empty(t, services[1].Description)
}

func TestRepository_ListActiveServices_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services")).
		WillReturnError(errors.New("timeout"))

	_, err := repo.ListActiveServices(context.Background(), "shop-1")
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ListActiveBarbers(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM barbers WHERE barbershop_id = $1 AND is_active = $2 ORDER BY name ASC",
	)).
		WithArgs("shop-1", true).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "barbershop_id", "name", "email", "phone", "is_active", "created_at", "updated_at",
		}).
			AddRow("barber-2", "shop-1", "Bruno", "bruno@example.com", nil, true, now, now))

	barbers, err := repo.ListActiveBarbers(context.Background(), "shop-1")

	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, "Bruno", barbers[0].Name)
	require.NotNil(t, barbers[0].Email)
	assert.Equal(t, "bruno@example.com", *barbers[0].Email)
	assert.Nil(t, barbers[0].Phone)
}

func TestRepository_ListActiveBarbers_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM barbers")).
		WithArgs("shop-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	barbers, err := repo.ListActiveBarbers(context.Background(), "shop-1")

	require.NoError(t, err)
	assert.Empty(t, barbers)
}

func TestRepository_ListServices_IncludesInactive(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM services WHERE barbershop_id = $1 ORDER BY name ASC",
	)).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow("svc-1", "shop-1", "Barba", nil, 40.0, 30, nil, false, now, now))

	services, err := repo.ListServices(context.Background(), "shop-1")

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.False(t, services[0].IsActive)
}

func TestRepository_GetServiceByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1 AND barbershop_id = $2")).
		WithArgs("svc-1", "shop-1").
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow("svc-1", "shop-1", "Barba", "Com toalha quente", 40.0, 30, "barba", true, now, now))

	s, err := repo.GetServiceByID(context.Background(), "shop-1", "svc-1")

	require.NoError(t, err)
	assert.Equal(t, "Com toalha quente", s.Description)
}

func TestRepository_GetServiceByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs("missing", "shop-1").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetServiceByID(context.Background(), "shop-1", "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_CreateService(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO services (id,barbershop_id,name,description,price,duration_minutes,category,is_active) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at, updated_at",
	)).
		WithArgs(sqlmock.AnyArg(), "shop-1", "Corte", nil, 45.0, 30, "cabelo", true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	s, err := repo.CreateService(context.Background(), &domain.Service{
		BarbershopID: "shop-1", Name: "Corte", Price: 45, DurationMinutes: 30, Category: "cabelo", IsActive: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, now, s.CreatedAt)
}

func TestRepository_UpdateService(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE services SET name = $1, description = $2, price = $3, duration_minutes = $4, category = $5, " +
			"is_active = $6, updated_at = NOW() WHERE id = $7 AND barbershop_id = $8",
	)).
		WithArgs("Corte", nil, 50.0, 40, nil, false, "svc-1", "shop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateService(context.Background(), &domain.Service{
		ID: "svc-1", BarbershopID: "shop-1", Name: "Corte", Price: 50, DurationMinutes: 40,
	})
	require.NoError(t, err)
}

func TestRepository_UpdateService_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateService(context.Background(), &domain.Service{ID: "missing", BarbershopID: "shop-1"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_CreateBarber(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	phone := "+55 11 99999-0000"

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO barbers (id,barbershop_id,name,email,phone,is_active) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at",
	)).
		WithArgs(sqlmock.AnyArg(), "shop-1", "Rafael", nil, &phone, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	b, err := repo.CreateBarber(context.Background(), &domain.Barber{
		BarbershopID: "shop-1", Name: "Rafael", Phone: &phone, IsActive: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
}

func TestRepository_GetBarberByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM barbers WHERE id = $1 AND barbershop_id = $2")).
		WithArgs("missing", "shop-1").
		WillReturnRows(sqlmock.NewRows(barberColumns))

	_, err := repo.GetBarberByID(context.Background(), "shop-1", "missing")
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestRepository_UpdateBarber(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE barbers SET name = $1, email = $2, phone = $3, is_active = $4, updated_at = NOW() WHERE id = $5 AND barbershop_id = $6",
	)).
		WithArgs("Rafael", nil, nil, false, "barber-1", "shop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBarber(context.Background(), &domain.Barber{ID: "barber-1", BarbershopID: "shop-1", Name: "Rafael"})
	require.NoError(t, err)
}

func TestRepository_ListBarbers_IncludesInactive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM barbers WHERE barbershop_id = $1 ORDER BY name ASC")).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows(barberColumns))

	barbers, err := repo.ListBarbers(context.Background(), "shop-1")

	require.NoError(t, err)
	assert.Empty(t, barbers)
}
