package receive_message

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/internal/usecase/process_message"
)

// ChatRepository интерфейс для получения чата
type ChatRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Chat, error)
}

// MessageStore интерфейс для сохранения сообщений в чате
type MessageStore interface {
	SaveMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error)
}

// Chatbot интерфейс ассистента записи
type Chatbot interface {
	Execute(ctx context.Context, req *process_message.Request) (*process_message.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
