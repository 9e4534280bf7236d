package mark_chat_read

import "context"

type ChatService interface {
	MarkAsRead(ctx context.Context, chatID, readerID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
