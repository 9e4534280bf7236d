package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	filters      []domain.AppointmentsFilter
	err          error
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if filter.StartDate != nil && a.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && a.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeTransactionRepo struct {
	transactions []*domain.Transaction
	listFilter   domain.TransactionsFilter
	err          error
}

func (f *fakeTransactionRepo) List(_ context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error) {
	f.listFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if filter.Limit > 0 && uint64(len(f.transactions)) > filter.Limit {
		return f.transactions[:filter.Limit], nil
	}
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Totals(_ context.Context, filter domain.TransactionsFilter) (domain.TransactionTotals, error) {
	if f.err != nil {
		return domain.TransactionTotals{}, f.err
	}
	var totals domain.TransactionTotals
	for _, t := range f.transactions {
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		totals.Count++
		if t.Type == domain.TransactionRevenue {
			totals.Revenue += t.Amount
		} else {
			totals.Expenses += t.Amount
		}
	}
	return totals, nil
}

type fakeBarberRepo struct {
	barbers []*domain.Barber
	err     error
}

func (f *fakeBarberRepo) ListActiveBarbers(context.Context, string) ([]*domain.Barber, error) {
	return f.barbers, f.err
}

type fakeClientCounter struct {
	count int
	err   error
}

func (f *fakeClientCounter) Count(context.Context, string) (int, error) {
	return f.count, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC)
}

func appointment(id string, date time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:           id,
		BarbershopID: "shop-1",
		Date:         date,
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("10:30"),
		Status:       status,
	}
}

type testEnv struct {
	appointments *fakeAppointmentRepo
	transactions *fakeTransactionRepo
	barbers      *fakeBarberRepo
	clients      *fakeClientCounter
	svc          *Service
}

func newTestEnv(now time.Time, loc *time.Location) *testEnv {
	env := &testEnv{
		appointments: &fakeAppointmentRepo{},
		transactions: &fakeTransactionRepo{},
		barbers:      &fakeBarberRepo{},
		clients:      &fakeClientCounter{},
	}
	env.svc = NewService(env.appointments, env.transactions, env.barbers, env.clients, loc, nopLogger{})
	env.svc.timeProvider = fixedTime{t: now}
	return env
}

func TestService_GetStats(t *testing.T) {
	env := newTestEnv(time.Date(2024, 12, 20, 15, 0, 0, 0, time.UTC), time.UTC)

	env.appointments.appointments = []*domain.Appointment{
		appointment("a-past", day(5), domain.StatusCompleted),
		appointment("a-cancelled", day(20), domain.StatusCancelled),
		appointment("a-today", day(20), domain.StatusScheduled),
		appointment("a-done-today", day(20), domain.StatusCompleted),
		appointment("a-later", day(28), domain.StatusConfirmed),
		appointment("a-next-month", time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), domain.StatusScheduled),
	}
	env.transactions.transactions = []*domain.Transaction{
		{ID: "t-1", Type: domain.TransactionRevenue, Amount: 80, Date: day(20)},
		{ID: "t-2", Type: domain.TransactionExpense, Amount: 30, Date: day(20)},
		{ID: "t-3", Type: domain.TransactionRevenue, Amount: 120, Date: day(2)},
		{ID: "t-4", Type: domain.TransactionRevenue, Amount: 999, Date: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)},
	}
	env.barbers.barbers = []*domain.Barber{{ID: "b-1"}, {ID: "b-2"}}
	env.clients.count = 42

	resp, err := env.svc.GetStats(context.Background(), "shop-1")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TodayAppointments)
	assert.Equal(t, 4, resp.MonthlyAppointments)
	assert.Equal(t, 80.0, resp.TodayRevenue)
	assert.Equal(t, 200.0, resp.MonthlyRevenue)
	assert.Equal(t, 2, resp.ActiveBarbers)
	assert.Equal(t, 42, resp.ActiveClients)

	var upcoming []string
	for _, a := range resp.UpcomingAppointments {
		upcoming = append(upcoming, a.ID)
	}
	assert.Equal(t, []string{"a-today", "a-later", "a-next-month"}, upcoming)

	assert.Len(t, resp.RecentTransactions, 4)
	assert.Equal(t, uint64(recentLimit), env.transactions.listFilter.Limit)
}

func TestService_GetStats_UsesBarbershopTimezone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	// 01:00 UTC on Dec 1 is still Nov 30 at UTC-3
	env := newTestEnv(time.Date(2024, 12, 1, 1, 0, 0, 0, time.UTC), loc)
	env.appointments.appointments = []*domain.Appointment{
		appointment("a-nov", time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), domain.StatusScheduled),
	}

	resp, err := env.svc.GetStats(context.Background(), "shop-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TodayAppointments)
	assert.Equal(t, 1, resp.MonthlyAppointments)

	require.NotEmpty(t, env.appointments.filters)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), *env.appointments.filters[0].StartDate)
	assert.Equal(t, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), *env.appointments.filters[0].EndDate)
}

func TestService_GetStats_UpcomingIsCapped(t *testing.T) {
	env := newTestEnv(time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC), time.UTC)
	for i := 1; i <= 15; i++ {
		env.appointments.appointments = append(env.appointments.appointments,
			appointment(fmt.Sprintf("a-%02d", i), day(i), domain.StatusScheduled))
	}

	resp, err := env.svc.GetStats(context.Background(), "shop-1")
	require.NoError(t, err)

	assert.Len(t, resp.UpcomingAppointments, upcomingLimit)
	assert.Equal(t, "a-01", resp.UpcomingAppointments[0].ID)
	assert.Equal(t, 15, resp.MonthlyAppointments)
}

func TestService_GetStats_EmptyListsAreNotNil(t *testing.T) {
	env := newTestEnv(time.Date(2024, 12, 20, 15, 0, 0, 0, time.UTC), time.UTC)

	resp, err := env.svc.GetStats(context.Background(), "shop-1")
	require.NoError(t, err)

	assert.NotNil(t, resp.UpcomingAppointments)
	assert.NotNil(t, resp.RecentTransactions)
}

func TestService_GetStats_Errors(t *testing.T) {
	now := time.Date(2024, 12, 20, 15, 0, 0, 0, time.UTC)

	t.Run("blank barbershop", func(t *testing.T) {
		env := newTestEnv(now, time.UTC)
		_, err := env.svc.GetStats(context.Background(), " ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	failures := map[string]func(env *testEnv){
		"appointments": func(env *testEnv) { env.appointments.err = errors.New("db") },
		"transactions": func(env *testEnv) { env.transactions.err = errors.New("db") },
		"barbers":      func(env *testEnv) { env.barbers.err = errors.New("db") },
		"clients":      func(env *testEnv) { env.clients.err = errors.New("db") },
	}
	for name, breakIt := range failures {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(now, time.UTC)
			breakIt(env)

			_, err := env.svc.GetStats(context.Background(), "shop-1")
			assert.ErrorIs(t, err, ErrInternal)
		})
	}
}
