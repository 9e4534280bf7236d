package catalog

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг и барберов
type CatalogRepository interface {
	ListActiveServices(ctx context.Context, barbershopID string) ([]*domain.Service, error)
	ListServices(ctx context.Context, barbershopID string) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, barbershopID, id string) (*domain.Service, error)
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, service *domain.Service) error

	ListActiveBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error)
	ListBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error)
	GetBarberByID(ctx context.Context, barbershopID, id string) (*domain.Barber, error)
	CreateBarber(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	UpdateBarber(ctx context.Context, barber *domain.Barber) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
