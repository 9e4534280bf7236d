package get_barbershop_chats

import (
	"context"

	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

type ChatService interface {
	ListBarbershopChats(ctx context.Context, barbershopID string) (*models.ChatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
