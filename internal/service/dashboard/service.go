package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	appointmentModels "github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
	"github.com/brunocamarg0/trim-squire/internal/service/dashboard/models"
	financeModels "github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

const (
	upcomingLimit = 10
	recentLimit   = 5
)

// Service собирает сводку барбершопа из записей, кассы и каталога
type Service struct {
	appointmentRepo AppointmentRepository
	transactionRepo TransactionRepository
	barberRepo      BarberRepository
	clientCounter   ClientCounter
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса сводки.
// location задает часовой пояс барбершопа, в котором считаются "сегодня" и "этот месяц".
func NewService(
	appointmentRepo AppointmentRepository,
	transactionRepo TransactionRepository,
	barberRepo BarberRepository,
	clientCounter ClientCounter,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		transactionRepo: transactionRepo,
		barberRepo:      barberRepo,
		clientCounter:   clientCounter,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetStats возвращает сводку на текущий момент
func (s *Service) GetStats(ctx context.Context, barbershopID string) (*models.StatsResponse, error) {
	if strings.TrimSpace(barbershopID) == "" {
		return nil, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	// 1. Границы дня и месяца в часовом поясе барбершопа
	now := s.timeProvider.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	// 2. Записи за месяц, из них же считаются записи на сегодня
	monthly, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		BarbershopID: barbershopID,
		StartDate:    &monthStart,
		EndDate:      &monthEnd,
	})
	if err != nil {
		return nil, s.internal("monthly appointments", barbershopID, err)
	}

	resp := &models.StatsResponse{}
	for _, a := range monthly {
		if a.Status == domain.StatusCancelled {
			continue
		}
		resp.MonthlyAppointments++
		if a.Date.Equal(today) {
			resp.TodayAppointments++
		}
	}

	// 3. Ближайшие активные записи
	upcoming, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		BarbershopID: barbershopID,
		StartDate:    &today,
	})
	if err != nil {
		return nil, s.internal("upcoming appointments", barbershopID, err)
	}
	active := make([]*domain.Appointment, 0, upcomingLimit)
	for _, a := range upcoming {
		if len(active) == upcomingLimit {
			break
		}
		if a.IsActive() {
			active = append(active, a)
		}
	}
	resp.UpcomingAppointments = appointmentModels.FromDomainAppointmentList(active).Appointments

	// 4. Выручка за день и месяц
	todayTotals, err := s.transactionRepo.Totals(ctx, domain.TransactionsFilter{
		BarbershopID: barbershopID,
		StartDate:    &today,
		EndDate:      &today,
	})
	if err != nil {
		return nil, s.internal("today totals", barbershopID, err)
	}
	resp.TodayRevenue = todayTotals.Revenue

	monthTotals, err := s.transactionRepo.Totals(ctx, domain.TransactionsFilter{
		BarbershopID: barbershopID,
		StartDate:    &monthStart,
		EndDate:      &monthEnd,
	})
	if err != nil {
		return nil, s.internal("monthly totals", barbershopID, err)
	}
	resp.MonthlyRevenue = monthTotals.Revenue

	// 5. Последние операции кассы
	recent, err := s.transactionRepo.List(ctx, domain.TransactionsFilter{
		BarbershopID: barbershopID,
		Limit:        recentLimit,
	})
	if err != nil {
		return nil, s.internal("recent transactions", barbershopID, err)
	}
	resp.RecentTransactions = financeModels.FromDomainTransactionList(recent).Transactions

	// 6. Барберы и клиенты
	barbers, err := s.barberRepo.ListActiveBarbers(ctx, barbershopID)
	if err != nil {
		return nil, s.internal("active barbers", barbershopID, err)
	}
	resp.ActiveBarbers = len(barbers)

	resp.ActiveClients, err = s.clientCounter.Count(ctx, barbershopID)
	if err != nil {
		return nil, s.internal("clients", barbershopID, err)
	}

	s.logger.Info("GetStats: barbershop=%s, today=%d, month=%d, upcoming=%d",
		barbershopID, resp.TodayAppointments, resp.MonthlyAppointments, len(resp.UpcomingAppointments))
	return resp, nil
}

func (s *Service) internal(step, barbershopID string, err error) error {
	s.logger.Error("GetStats: failed to load %s for barbershop=%s: %v", step, barbershopID, err)
	return fmt.Errorf("%w: GetStats - %s: %v", ErrInternal, step, err)
}
