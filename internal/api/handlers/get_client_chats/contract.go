package get_client_chats

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

type ChatService interface {
	ListClientChats(ctx context.Context, clientID string) (*models.ChatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
