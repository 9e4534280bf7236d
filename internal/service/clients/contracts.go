package clients

import (
	"context"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, barbershopID, id string) (*domain.Client, error)
	List(ctx context.Context, barbershopID string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
