package create_chat

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

type ChatService interface {
	GetOrCreateChat(ctx context.Context, req *models.GetOrCreateChatRequest) (*models.ChatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
