package get_chat_messages

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

type ChatService interface {
	GetMessages(ctx context.Context, chatID string) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
