package process_message

import (
	"context"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Catalog интерфейс справочника услуг и барберов барбершопа
type Catalog interface {
	ListActiveServices(ctx context.Context, barbershopID string) ([]*domain.Service, error)
	ListActiveBarbers(ctx context.Context, barbershopID string) ([]*domain.Barber, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// MessageSender интерфейс отправки сообщений в чат
type MessageSender interface {
	SendMessage(ctx context.Context, message *domain.Message) (string, error)
}

// ConversationStore интерфейс хранилища контекстов диалога
type ConversationStore interface {
	Get(ctx context.Context, chatID string) (*domain.Conversation, error)
	Save(ctx context.Context, conversation *domain.Conversation) error
	Delete(ctx context.Context, chatID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик ассистента
type Metrics interface {
	ObserveInboundMessage(intent string)
	ObserveStep(state string)
	ObserveCommit(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) ObserveInboundMessage(string) {}
func (noopMetrics) ObserveStep(string)           {}
func (noopMetrics) ObserveCommit(string)         {}
