package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	clientRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/client"
	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
)

// Service сервис клиентской базы барбершопа
type Service struct {
	clientRepo   ClientRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:   clientRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateClient регистрирует клиента барбершопа
func (s *Service) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("CreateClient: barbershop=%s", req.BarbershopID)

	// 1. Валидация входных данных
	client := req.ToDomain()
	if err := validateClient(client, s.timeProvider.Now()); err != nil {
		s.logger.Warn("CreateClient: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохранение
	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("CreateClient: failed to create client for barbershop=%s: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: CreateClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClient: created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// UpdateClient частично обновляет контакты и предпочтения клиента
func (s *Service) UpdateClient(
	ctx context.Context,
	barbershopID, clientID string,
	req *models.UpdateClientRequest,
) (*models.ClientResponse, error) {
	s.logger.Info("UpdateClient: barbershop=%s, client=%s", barbershopID, clientID)

	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Client
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.GetByID(ctx, barbershopID, clientID)
		if err != nil {
			return err
		}

		req.ApplyTo(client)
		if err := validateClient(client, s.timeProvider.Now()); err != nil {
			return err
		}

		if err := s.clientRepo.Update(ctx, client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			s.logger.Warn("UpdateClient: client=%s not found", clientID)
			return nil, ErrClientNotFound
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("UpdateClient: validation failed: %v", err)
			return nil, err
		default:
			s.logger.Error("UpdateClient: failed to update client=%s: %v", clientID, err)
			return nil, fmt.Errorf("%w: UpdateClient - transaction failed: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateClient: client id=%s updated", updated.ID)
	return models.FromDomainClient(updated), nil
}

// ListClients возвращает клиентов барбершопа по алфавиту
func (s *Service) ListClients(ctx context.Context, barbershopID string) (*models.ClientListResponse, error) {
	if strings.TrimSpace(barbershopID) == "" {
		return nil, fmt.Errorf("%w: barbershop id is required", ErrInvalidInput)
	}

	clients, err := s.clientRepo.List(ctx, barbershopID)
	if err != nil {
		s.logger.Error("ListClients: repository error for barbershop=%s: %v", barbershopID, err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClients: fetched %d clients for barbershop=%s", len(clients), barbershopID)
	return models.FromDomainClientList(clients), nil
}
