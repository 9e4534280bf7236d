package chats

import (
	"context"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// ChatRepository интерфейс репозитория чатов и сообщений
type ChatRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Chat, error)
	GetActiveByClient(ctx context.Context, barbershopID, clientID string) (*domain.Chat, error)
	ListActiveByBarbershop(ctx context.Context, barbershopID string) ([]*domain.Chat, error)
	ListActiveByClient(ctx context.Context, clientID string) ([]*domain.Chat, error)
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	InsertMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	TouchChat(ctx context.Context, chatID, lastMessage string, at time.Time) error
	ListMessages(ctx context.Context, chatID string) ([]*domain.Message, error)
	MarkMessagesRead(ctx context.Context, chatID, readerID string) (int64, error)
	ResetUnread(ctx context.Context, chatID string) error
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
