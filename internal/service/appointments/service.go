package appointments

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	appointmentRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/appointment"
	"github.com/brunocamarg0/trim-squire/internal/service/appointments/models"
	"github.com/brunocamarg0/trim-squire/pkg/ptr"
)

// Service сервис для работы с записями барбершопа
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись барбершопа по ID
func (s *Service) GetByID(ctx context.Context, barbershopID, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for barbershop=%s", id, barbershopID)

	appointment, err := s.load(ctx, "GetByID", barbershopID, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи барбершопа с фильтрацией по барберу, статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("List: fetching appointments for barbershop=%s", req.BarbershopID)
	if req.BarberID != nil {
		logMsg += fmt.Sprintf(", barber=%s", *req.BarberID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.StartDate != nil {
		logMsg += fmt.Sprintf(", from=%s", req.StartDate.Format(domain.DateFormat))
	}
	if req.EndDate != nil {
		logMsg += fmt.Sprintf(", to=%s", req.EndDate.Format(domain.DateFormat))
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for barbershop=%s", len(appointments), req.BarbershopID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Отменить можно только запланированную или подтвержденную запись
func (s *Service) Cancel(ctx context.Context, barbershopID, id string, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s for barbershop=%s", id, barbershopID)

	var notes *string
	if req != nil {
		notes = req.Notes
	}

	if utf8.RuneCountInString(ptr.Value(notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return s.transition(ctx, "Cancel", barbershopID, id, domain.StatusCancelled, notes,
		(*domain.Appointment).CanBeCancelled, ErrCannotCancel)
}

// Complete помечает запись как выполненную
func (s *Service) Complete(ctx context.Context, barbershopID, id string) error {
	s.logger.Info("Complete: completing appointment id=%s for barbershop=%s", id, barbershopID)

	return s.transition(ctx, "Complete", barbershopID, id, domain.StatusCompleted, nil,
		(*domain.Appointment).CanBeCompleted, ErrCannotComplete)
}

// Вспомогательные методы

// transition проверяет текущий статус и обновляет его в одной транзакции
func (s *Service) transition(
	ctx context.Context,
	op, barbershopID, id string,
	target domain.AppointmentStatus,
	notes *string,
	allowed func(*domain.Appointment) bool,
	errNotAllowed error,
) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appointment, err := s.load(ctx, op, barbershopID, id)
		if err != nil {
			return err
		}

		if !allowed(appointment) {
			s.logger.Warn("%s: appointment id=%s has status=%s", op, id, appointment.Status)
			return errNotAllowed
		}

		if err := s.appointmentRepo.UpdateStatus(ctx, id, target, notes); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("%s: appointment id=%s moved to status=%s", op, id, target)
	return nil
}

func (s *Service) load(ctx context.Context, op, barbershopID, id string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, barbershopID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}
