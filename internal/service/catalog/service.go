package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	catalogRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/catalog"
	"github.com/brunocamarg0/trim-squire/internal/service/catalog/models"
)

// Service сервис управления услугами и барберами барбершопа
type Service struct {
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ============ УСЛУГИ ============

// CreateService создает активную услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: barbershop=%s, name=%q", req.BarbershopID, req.Name)

	// 1. Валидация входных данных
	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохранение
	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: failed to create service for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу. Отключенная услуга пропадает из диалога записи.
func (s *Service) UpdateService(
	ctx context.Context,
	barbershopID, serviceID string,
	req *models.UpdateServiceRequest,
) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: barbershop=%s, service=%s", barbershopID, serviceID)

	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Service
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Загружаем текущую версию
		service, err := s.catalogRepo.GetServiceByID(ctx, barbershopID, serviceID)
		if err != nil {
			return err
		}

		// 2. Применяем изменения и проверяем результат целиком
		req.ApplyTo(service)
		if err := validateService(service); err != nil {
			return err
		}

		// 3. Сохраняем
		if err := s.catalogRepo.UpdateService(ctx, service); err != nil {
			return err
		}
		updated = service
		return nil
	})
	if err != nil {
		return nil, s.mapError("UpdateService", err)
	}

	s.logger.Info("UpdateService: service id=%s updated (active=%t)", updated.ID, updated.IsActive)
	return models.FromDomainService(updated), nil
}

// ListServices возвращает услуги барбершопа. Без includeInactive только активные.
func (s *Service) ListServices(ctx context.Context, barbershopID string, includeInactive bool) (*models.ServiceListResponse, error) {
	if strings.TrimSpace(barbershopID) == "" {
		return nil, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	var services []*domain.Service
	var err error
	if includeInactive {
		services, err = s.catalogRepo.ListServices(ctx, barbershopID)
	} else {
		services, err = s.catalogRepo.ListActiveServices(ctx, barbershopID)
	}
	if err != nil {
		s.logger.Error("ListServices: repository error for barbershop=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services for barbershop=%s", len(services), barbershopID)
	return models.FromDomainServiceList(services), nil
}

// ============ БАРБЕРЫ ============

// CreateBarber создает активного барбера
func (s *Service) CreateBarber(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("CreateBarber: barbershop=%s, name=%q", req.BarbershopID, req.Name)

	// 1. Валидация входных данных
	barber := req.ToDomain()
	if err := validateBarber(barber); err != nil {
		s.logger.Warn("CreateBarber: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохранение
	created, err := s.catalogRepo.CreateBarber(ctx, barber)
	if err != nil {
		s.logger.Error("CreateBarber: failed to create barber for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: CreateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBarber: created barber id=%s", created.ID)
	return models.FromDomainBarber(created), nil
}

// UpdateBarber частично обновляет барбера
func (s *Service) UpdateBarber(
	ctx context.Context,
	barbershopID, barberID string,
	req *models.UpdateBarberRequest,
) (*models.BarberResponse, error) {
	s.logger.Info("UpdateBarber: barbershop=%s, barber=%s", barbershopID, barberID)

	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Barber
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		barber, err := s.catalogRepo.GetBarberByID(ctx, barbershopID, barberID)
		if err != nil {
			return err
		}

		req.ApplyTo(barber)
		if err := validateBarber(barber); err != nil {
			return err
		}

		if err := s.catalogRepo.UpdateBarber(ctx, barber); err != nil {
			return err
		}
		updated = barber
		return nil
	})
	if err != nil {
		return nil, s.mapError("UpdateBarber", err)
	}

	s.logger.Info("UpdateBarber: barber id=%s updated (active=%t)", updated.ID, updated.IsActive)
	return models.FromDomainBarber(updated), nil
}

// ListBarbers возвращает барберов барбершопа. Без includeInactive только активные.
func (s *Service) ListBarbers(ctx context.Context, barbershopID string, includeInactive bool) (*models.BarberListResponse, error) {
	if strings.TrimSpace(barbershopID) == "" {
		return nil, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	var barbers []*domain.Barber
	var err error
	if includeInactive {
		barbers, err = s.catalogRepo.ListBarbers(ctx, barbershopID)
	} else {
		barbers, err = s.catalogRepo.ListActiveBarbers(ctx, barbershopID)
	}
	if err != nil {
		s.logger.Error("ListBarbers: repository error for barbershop=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbers: fetched %d barbers for barbershop=%s", len(barbers), barbershopID)
	return models.FromDomainBarberList(barbers), nil
}

// mapError переводит ошибки репозитория в ошибки сервиса
func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		s.logger.Warn("%s: service not found", op)
		return ErrServiceNotFound
	case errors.Is(err, catalogRepo.ErrBarberNotFound):
		s.logger.Warn("%s: barber not found", op)
		return ErrBarberNotFound
	case errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: validation failed: %v", op, err)
		return err
	default:
		s.logger.Error("%s: transaction failed: %v", op, err)
		return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
	}
}
